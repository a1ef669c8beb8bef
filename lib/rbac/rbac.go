package rbac

import (
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"tpo-portal-backend/models"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		rules:       map[HTTPMethod]*methodRules{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	if err := i.initRules(); err != nil {
		panic(err.Error())
	}
	Instance = i
}

type impl struct {
	rules       map[HTTPMethod]*methodRules
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	rules, ok := i.rules[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	path = normalizePath(path)
	if handler, ok := rules.exact[path]; ok {
		return handler, true
	}
	segments := splitPath(path)
	for _, r := range rules.routes {
		if r.match(segments) {
			return r.handler, true
		}
	}
	return nil, false
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return errors.Errorf("no roles for rule %q", swaggerPattern)
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	rules, ok := i.rules[method]
	if !ok {
		rules = &methodRules{exact: map[string]models.RbacFunc{}}
		i.rules[method] = rules
	}
	if !strings.Contains(path, "{") {
		if _, dup := rules.exact[path]; dup {
			return errors.Errorf("duplicate rule %q", swaggerPattern)
		}
		rules.exact[path] = handler
	} else {
		for _, r := range rules.routes {
			if r.pattern == path {
				return errors.Errorf("duplicate rule %q", swaggerPattern)
			}
		}
		rules.routes = append(rules.routes, newRoute(path, handler))
		// literal segments win over parameters: /profiles/stats before /profiles/{id}
		sort.SliceStable(rules.routes, func(a, b int) bool {
			return rules.routes[a].literals > rules.routes[b].literals
		})
	}
	i.addPermission(module, permission, roles)
	return nil
}

// addPermission fills the per-role permission map served by /me/permissions
func (i *impl) addPermission(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func newRoute(path string, handler models.RbacFunc) route {
	r := route{pattern: path, segments: splitPath(path), handler: handler}
	for _, s := range r.segments {
		if !isParam(s) {
			r.literals++
		}
	}
	return r
}

func (r route) match(segments []string) bool {
	if len(segments) != len(r.segments) {
		return false
	}
	for idx, s := range r.segments {
		if isParam(s) {
			if segments[idx] == "" {
				return false
			}
			continue
		}
		if s != segments[idx] {
			return false
		}
	}
	return true
}

func isParam(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func AllowFunc() models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

// parseSwaggerPattern parses "/api/v1/job_postings [post]"
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	start := strings.LastIndex(pattern, "[")
	end := strings.LastIndex(pattern, "]")
	if start == -1 || end < start {
		return "", "", errors.Errorf("method not provided for pattern %q", pattern)
	}
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[start+1 : end])))
	switch method {
	case GET, POST, PUT:
	default:
		return "", "", errors.Errorf("unsupported method %q in pattern %q", method, pattern)
	}
	return normalizePath(strings.TrimSpace(pattern[:start])), method, nil
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
