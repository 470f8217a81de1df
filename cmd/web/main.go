// @title           Realty API
// @version         1.0
// @description     API для объявлений о продаже недвижимости и запросов покупателей риелторам.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "realty_backend/internal/app"

func main() {
	app.Run()
}
