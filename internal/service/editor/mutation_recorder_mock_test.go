package editor

import (
	"sync"
)

var _ mutationRecorder = &mutationRecorderMock{}

type mutationRecorderMock struct {
	RecordMutationFunc func(action string, outcome string)

	calls struct {
		RecordMutation []struct {
			Action  string
			Outcome string
		}
	}
	lockRecordMutation sync.RWMutex
}

func (mock *mutationRecorderMock) RecordMutation(action string, outcome string) {
	if mock.RecordMutationFunc == nil {
		panic("mutationRecorderMock.RecordMutationFunc: method is nil but mutationRecorder.RecordMutation was just called")
	}
	callInfo := struct {
		Action  string
		Outcome string
	}{Action: action, Outcome: outcome}
	mock.lockRecordMutation.Lock()
	mock.calls.RecordMutation = append(mock.calls.RecordMutation, callInfo)
	mock.lockRecordMutation.Unlock()
	mock.RecordMutationFunc(action, outcome)
}

func (mock *mutationRecorderMock) RecordMutationCalls() []struct {
	Action  string
	Outcome string
} {
	mock.lockRecordMutation.RLock()
	calls := mock.calls.RecordMutation
	mock.lockRecordMutation.RUnlock()
	return calls
}
