// internal/store/interface.go
package store

// Interface defines the article store contract for dependency injection and testing.
type Interface interface {
	Resolve(handle Handle) (Article, error)
	SaveArticles(articles []Article) error
	ListArticles() ([]ArticleInfo, error)
	LoadPlayerState() (*PlayerState, error)
	SavePlayerState(state PlayerState) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
