package cli

import "snowstage-sync/internal/app"

func newAppService() app.Service {
	return app.NewService()
}
