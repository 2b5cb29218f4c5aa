package main

import (
	"Samplepedia/app"
	"Samplepedia/common"
	"Samplepedia/dao"
	"fmt"
)

func main() {
	cfg := common.JsonFileToMap("config.json")
	if cfg == nil {
		panic("cannot read config.json")
	}
	if err := common.Init(cfg); err != nil {
		panic(err)
	}
	if err := dao.Init(cfg); err != nil {
		panic(err)
	}
	fmt.Println("database ready")
	app.InitRouters()
}
