package model

// Principal 已驗證的請求者
type Principal struct {
	UserID int
	CartID int
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccess 本人或管理者
func (p Principal) CanAccess(ownerID int) bool {
	return p.UserID == ownerID || p.IsAdmin()
}
