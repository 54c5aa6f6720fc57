package kvdb

// ContentBucket holds page content snapshots keyed by page URL.
const ContentBucket = "content"

type DB interface {
	Set(bucket string, key string, value string) error
	Get(bucket string, key string) (string, error)
	Delete(bucket string, key string) error
	GetAllKeys(bucket string) ([]string, error)
	Close() error
}
