// @title           FixNow API
// @version         1.0
// @description     Marketplace de serviços domésticos (documentação Swagger).
// @contact.name    FixNow
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "fixnow_backend/internal/app"

func main() {
	app.Run()
}
