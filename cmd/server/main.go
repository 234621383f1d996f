package main

import (
	"os"

	"nutrifit/config"
	"nutrifit/controllers"
	"nutrifit/routes"
	"nutrifit/services"
	"nutrifit/utils"
)

func main() {
	config.InitDB()
	if os.Getenv("AWS_REGION") != "" {
		utils.InitS3()
		utils.InitMailer()
	}

	services.InitAlertDeps(config.DB, controllers.Hub)

	r := routes.SetupRouter()

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	r.Run(addr)
}
