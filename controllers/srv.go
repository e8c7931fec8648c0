package controllers

import (
	"lostfound/app"
	"lostfound/config"
	"lostfound/db"
	"lostfound/geocache"
	"lostfound/logger"
)

// Srv bundles the dependencies every controller needs.
type Srv struct {
	Repo *db.Repo
	Log  *logger.Logger
	Geo  *geocache.Store
	Cfg  config.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo: db.NewRepo(a.DB),
		Log:  a.Log,
		Geo:  a.Geocache(),
		Cfg:  a.Config,
	}
}
