//go:build tools

package tools

// CLI tools used during development. goose is pinned through the tool
// directive in go.mod; moq is installed separately:
//
//	go tool goose -dir migrations postgres "$DATABASE_DSN" status
//	go install github.com/matryer/moq@latest && go generate ./...
