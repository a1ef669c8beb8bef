package rbac

import (
	"tpo-portal-backend/models"
)

type HTTPMethod string

const (
	GET  HTTPMethod = "GET"
	POST HTTPMethod = "POST"
	PUT  HTTPMethod = "PUT"
)

// route is a registered path split into segments; "{param}" segments match any value
type route struct {
	pattern  string
	segments []string
	literals int
	handler  models.RbacFunc
}

type methodRules struct {
	exact  map[string]models.RbacFunc
	routes []route
}
