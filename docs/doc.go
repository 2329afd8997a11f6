// Package docs provides generated OpenAPI documentation.
//
// Aralplan API
//
//	@title			Aralplan API
//	@version		1.0
//	@description	DepEd lesson plan generation API: schema-constrained drafting, section editing, and DLL exports.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jpsantiago/aralplan
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8787
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/aralplan/serve.go -o ./swagger --parseDependency --parseInternal
