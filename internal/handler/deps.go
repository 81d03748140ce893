package handler

import (
	"ukoradar/internal/app/hype"
	"ukoradar/internal/app/profile"
	"ukoradar/internal/app/session"
	"ukoradar/internal/app/storage"
	"ukoradar/internal/configs"
)

type AppDeps struct {
	Sessions  *session.Registry
	Config    *configs.AppConfig
	Profiles  *profile.Store
	Avatars   storage.AvatarStore
	Describer hype.Describer
}
