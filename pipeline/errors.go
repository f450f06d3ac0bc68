package pipeline

import "errors"

var (
	// ErrTier2Required is returned when a tier-2 extractor is not provided.
	ErrTier2Required = errors.New("tier-2 extractor required")

	// ErrExtractorRequired is returned when an LLM extractor is not provided.
	ErrExtractorRequired = errors.New("LLM extractor required")

	// ErrSinkRequired is returned when a result sink is not provided.
	ErrSinkRequired = errors.New("result sink required")

	// ErrSourceRequired is returned when a task source is not provided.
	ErrSourceRequired = errors.New("task source required")

	// ErrPipelineRequired is returned when a pipeline is not provided.
	ErrPipelineRequired = errors.New("pipeline required")
)
