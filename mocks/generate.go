package mocks

//go:generate mockgen -destination=./mock_source.go -package=mocks github.com/rxtech-lab/argo-terminal/pkg/marketdata FundamentalsSource,Resolver,Source
//go:generate mockgen -destination=./mock_source_factory.go -package=mocks github.com/rxtech-lab/argo-terminal/internal/terminal SourceFactory
//go:generate mockgen -destination=./mock_line_reader.go -package=mocks github.com/rxtech-lab/argo-terminal/internal/prompt LineReader
