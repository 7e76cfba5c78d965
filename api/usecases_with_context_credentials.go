package api

import (
	"context"

	"github.com/driveline/rental-backend/usecases"
	"github.com/driveline/rental-backend/utils"
)

func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) usecases.UsecasesWithCreds {
	creds := utils.CredentialsFromCtx(ctx)
	return uc.NewWithCreds(creds)
}
