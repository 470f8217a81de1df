package auth

import "realty_backend/internal/models"

// CanManageListing - единое правило владения объявлением.
// Управлять объявлением (изменять, удалять, читать сообщения) может только
// риэлтор, который его создал. Администратор исключением не является.
func CanManageListing(user *models.User, listing *models.Home) bool {
	if user == nil || listing == nil {
		return false
	}
	return listing.RealtorID == user.ID
}

// RequiresProductKey сообщает, нужен ли ключ продукта для регистрации с ролью
func RequiresProductKey(role models.UserRole) bool {
	return role.IsPrivileged()
}
