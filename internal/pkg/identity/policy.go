package identity

import (
	"strings"

	"laundry/internal/entities"
	"laundry/internal/pkg/config"
)

// AdminPolicy решает, является ли пользователь администратором.
// Достаточно любого совпадения: email, домен email, имя или id пользователя.
type AdminPolicy struct {
	emails  map[string]struct{}
	domains map[string]struct{}
	names   map[string]struct{}
	userIDs map[string]struct{}
}

func NewAdminPolicy(cfg config.Admin) *AdminPolicy {
	return &AdminPolicy{
		emails:  toSet(cfg.Emails, strings.ToLower),
		domains: toSet(cfg.EmailDomains, func(s string) string { return strings.TrimPrefix(strings.ToLower(s), "@") }),
		names:   toSet(cfg.Names, nil),
		userIDs: toSet(cfg.UserIDs, nil),
	}
}

func (p *AdminPolicy) IsAdmin(caller entities.Caller) bool {
	email := strings.ToLower(strings.TrimSpace(caller.Email))
	if email != "" {
		if _, ok := p.emails[email]; ok {
			return true
		}
		if at := strings.LastIndexByte(email, '@'); at >= 0 {
			if _, ok := p.domains[email[at+1:]]; ok {
				return true
			}
		}
	}
	if name := strings.TrimSpace(caller.Name); name != "" {
		if _, ok := p.names[name]; ok {
			return true
		}
	}
	if caller.ID != "" {
		if _, ok := p.userIDs[caller.ID]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string, fn func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if fn != nil {
			v = fn(v)
		}
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
