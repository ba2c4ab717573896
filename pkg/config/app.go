package config

var AppVersion = "DEVELOPMENT"

const (
	AppName          = "enjoy"
	LogFile          = "enjoy.log"
	CfgFile          = "default.ini"
	OptionsSection   = "options"
	CoresSection     = "cores"
	RetroArchName    = "retroarch"
	RetroArchCfgFile = "retroarch.cfg"
)
