package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/pipeline"
)

// Asker defines the interface for answering a single query
type Asker interface {
	Answer(ctx context.Context, q model.Query) (*pipeline.Result, error)
}

// QueryJob represents one query to answer
type QueryJob struct {
	Query model.Query
	Asker Asker
}

// Execute executes the query job
func (j *QueryJob) Execute(ctx context.Context) Result {
	result, err := j.Asker.Answer(ctx, j.Query)
	return &QueryResult{
		Query:  j.Query,
		Result: result,
		Error:  err,
	}
}

// QueryResult represents the result of a query job
type QueryResult struct {
	Query  model.Query
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the query result
func (r *QueryResult) GetError() error {
	return r.Error
}

// BatchProcessor answers multiple queries concurrently
type BatchProcessor struct {
	asker       Asker
	concurrency int
	language    model.Language
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(asker Asker, concurrency int, language model.Language) *BatchProcessor {
	return &BatchProcessor{
		asker:       asker,
		concurrency: concurrency,
		language:    language,
	}
}

// ProcessQueries answers multiple queries concurrently
func (b *BatchProcessor) ProcessQueries(ctx context.Context, queries []string) []*QueryResult {
	if len(queries) == 0 {
		return []*QueryResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, text := range queries {
		job := &QueryJob{
			Query: model.Query{Text: text, Language: b.language},
			Asker: b.asker,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	queryResults := make([]*QueryResult, len(results))
	for i, result := range results {
		queryResults[i] = result.(*QueryResult)
	}

	return queryResults
}

// ProcessFile reads queries from a file and answers them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*QueryResult, error) {
	queries, err := ReadQueriesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}

	return b.ProcessQueries(ctx, queries), nil
}

// ReadQueriesFromFile reads queries from a file (one per line)
func ReadQueriesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var queries []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate queries
		if !seen[line] {
			seen[line] = true
			queries = append(queries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return queries, nil
}
