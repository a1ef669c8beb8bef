package accountapimodels

import "tpo-portal-backend/models"

// PermissionsView lists what the current role may do, grouped by module
type PermissionsView struct {
	UserID      string                                `json:"user_id"`
	Role        models.UserRole                       `json:"role"`
	Permissions map[models.Module][]models.Permission `json:"permissions"`
}
