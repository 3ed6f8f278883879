package service

import (
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// Роли, которым разрешены операции
var (
	salesRoles    = []domain.Role{domain.RoleAdmin, domain.RoleCashier}
	operatorRoles = []domain.Role{domain.RoleAdmin, domain.RoleOperator}
	adminRoles    = []domain.Role{domain.RoleAdmin}
)

// requireRole возвращает PermissionError, если роль актора не входит в список
func requireRole(actor domain.Actor, action string, roles ...domain.Role) error {
	if actor.HasRole(roles...) {
		return nil
	}
	return &domain.PermissionError{Action: action, Role: actor.Role}
}
