package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle is stored in the
// request context.
const DBContextKey = contextKey("db")
