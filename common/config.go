package common

import (
	"errors"
)

type H = map[string]interface{}

var (
	WebHttp       string   //site address, used to build absolute urls
	Avatars       []string //selectable avatar paths
	SessionSecret string
	Listen        = ":9999" //bind address
)

func Init(cfg H) error {
	if err := initRsaKeys(cfg["rsa"].(H)); err != nil {
		return err
	}
	var ok bool
	WebHttp, ok = cfg["address"].(string)
	if !ok {
		return errors.New("missing site address")
	}
	SessionSecret, ok = cfg["session_secret"].(string)
	if !ok {
		return errors.New("missing session secret")
	}
	tmp, ok := cfg["avatars"].([]interface{})
	if !ok {
		return errors.New("missing avatar list")
	}
	Avatars = make([]string, len(tmp))
	for i, item := range tmp {
		var ok2 bool
		Avatars[i], ok2 = item.(string)
		if !ok2 {
			return errors.New("bad avatar entry")
		}
	}
	if listen, ok := cfg["listen"].(string); ok {
		Listen = listen
	}
	if discordCfg, ok := cfg["discord"].(H); ok {
		initDiscord(discordCfg)
	}
	return nil
}

var (
	DiscordWebhooks map[string]string //difficulty -> webhook url
	DiscordDefault  string            //fallback webhook url
)

func initDiscord(cfg H) {
	DiscordWebhooks = make(map[string]string)
	if hooks, ok := cfg["webhooks"].(H); ok {
		for k, v := range hooks {
			if s, ok2 := v.(string); ok2 {
				DiscordWebhooks[k] = s
			}
		}
	}
	if s, ok := cfg["default_webhook"].(string); ok {
		DiscordDefault = s
	}
}
