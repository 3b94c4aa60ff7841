package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/platform/logging"
	"github.com/binetime/binetime/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

type Handler struct {
	userService        *usecase.UserService
	teamService        *usecase.TeamService
	leagueService      *usecase.LeagueService
	awardConfigService *usecase.AwardConfigService
	awardService       *usecase.AwardService
	secureCookies      bool
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	userService *usecase.UserService,
	teamService *usecase.TeamService,
	leagueService *usecase.LeagueService,
	awardConfigService *usecase.AwardConfigService,
	awardService *usecase.AwardService,
	secureCookies bool,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		userService:        userService,
		teamService:        teamService,
		leagueService:      leagueService,
		awardConfigService: awardConfigService,
		awardService:       awardService,
		secureCookies:      secureCookies,
		logger:             logger,
		validator:          validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// decodeJSON reads a single JSON object, rejecting unknown fields, then
// validates it.
func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func mustPrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}
