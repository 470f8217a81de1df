package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы будем хранить *gorm.DB в context
const DBContextKey = contextKey("db")

// UserContextKey - ключ для пользователя, прошедшего проверку доступа
const UserContextKey = contextKey("current_user")
