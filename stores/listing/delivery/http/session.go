package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/delivery"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/middleware"
	"github.com/anft-xyz/goapi/stores/listing/session"
	"github.com/anft-xyz/goapi/stores/listing/store"
)

func (h *handler) session(c echo.Context) (*session.Session, error) {
	return h.sessions.Get(c.Param("sid"))
}

func (h *handler) stateResp(c echo.Context, s *session.Session) error {
	c.Response().Header().Set(middleware.HeaderSessionId, s.Id())
	return delivery.MakeJsonResp(c, http.StatusOK, newStateView(s.State(), timeNow(), h.loc))
}

type walletPayload struct {
	Address domain.Address `json:"address" validate:"omitempty,address"`
}

// createSession
//
//	@Summary		Open a listing session
//	@Description	The session keeps the fetched listings and fetch status of one client. Its id is returned in the X-Session-Id header too.
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		walletPayload	false	"connected wallet"
//	@Success		200		{object}	StateView
//	@Router			/sessions [post]
func (h *handler) createSession(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := walletPayload{}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&p); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidJsonFormat)
		}
		if err := c.Validate(&p); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
	}

	s := h.sessions.Create(ctx)
	if !p.Address.IsEmpty() {
		if err := s.SetWallet(ctx, p.Address.ToLower()); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}
	if _, err := s.RestoreFilter(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		ctx.WithField("err", err).Warn("s.RestoreFilter failed")
	}
	return h.stateResp(c, s)
}

// getSession
//
//	@Summary	Get session state
//	@Description	Pending notices are returned once
//	@Tags		sessions
//	@Produce	json
//	@Param		sid	path		string	true	"session id"
//	@Success	200	{object}	StateView
//	@Failure	404
//	@Router		/sessions/{sid} [get]
func (h *handler) getSession(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	return h.stateResp(c, s)
}

// closeSession
//
//	@Summary	Close session
//	@Tags		sessions
//	@Param		sid	path	string	true	"session id"
//	@Success	204
//	@Failure	404
//	@Router		/sessions/{sid} [delete]
func (h *handler) closeSession(c echo.Context) error {
	if err := h.sessions.Close(c.Param("sid")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fetchEntities
//
//	@Summary		Fetch a listing page into the session
//	@Description	Takes the query parameters of GET /listings. Only the latest fetch of a session is applied, an older one answers 409.
//	@Tags			sessions
//	@Produce		json
//	@Param			sid	path		string	true	"session id"
//	@Success		200	{object}	StateView
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Router			/sessions/{sid}/listings [post]
func (h *handler) fetchEntities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	filter, err := bindFilter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := s.FetchEntities(ctx, filter); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return h.stateResp(c, s)
}

// fetchByAddresses
//
//	@Summary		Fetch listings by contract address into the session
//	@Description	Replaces the session page like a page fetch does and releases waiting detail fetches.
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			sid		path		string				true	"session id"
//	@Param			body	body		addressesPayload	true	"contract addresses"
//	@Success		200		{object}	StateView
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		502
//	@Router			/sessions/{sid}/listings/by-address [post]
func (h *handler) fetchByAddresses(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	p := addressesPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidJsonFormat)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := s.FetchByAddresses(ctx, p.Addresses); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return h.stateResp(c, s)
}

// fetchEntity
//
//	@Summary		Fetch a listing detail into the session
//	@Description	Waits for the running page fetch. A listing the api does not know sets notFound in the state.
//	@Tags			sessions
//	@Produce		json
//	@Param			sid	path		string	true	"session id"
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	StateView
//	@Failure		404
//	@Failure		409
//	@Failure		504
//	@Router			/sessions/{sid}/listings/{id} [post]
func (h *handler) fetchEntity(c echo.Context) error {
	cont, cancel := ctx.WithTimeout(c.Get("ctx").(ctx.Ctx), h.wait)
	defer cancel()

	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	if err := s.FetchEntity(cont, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// the client navigates back on notFound
			return h.stateResp(c, s)
		}
		return delivery.MakeJsonResp(c, http.StatusGatewayTimeout, err)
	}
	return h.stateResp(c, s)
}

// fetchOptions
//
//	@Summary	Fetch options and stakes of the session wallet
//	@Tags		sessions
//	@Produce	json
//	@Param		sid	path		string	true	"session id"
//	@Param		id	path		string	true	"listing id"
//	@Success	200	{object}	StateView
//	@Failure	404
//	@Failure	503
//	@Router		/sessions/{sid}/listings/{id}/options [post]
func (h *handler) fetchOptions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	if err := s.FetchOptionsWithStakes(ctx, c.Param("id"), s.Wallet()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return h.stateResp(c, s)
}

// setWallet
//
//	@Summary		Set the session wallet
//	@Description	A changed wallet reloads the stakes of the current listing
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			sid		path		string			true	"session id"
//	@Param			body	body		walletPayload	true	"wallet, empty to disconnect"
//	@Success		200		{object}	StateView
//	@Failure		400
//	@Failure		404
//	@Router			/sessions/{sid}/wallet [put]
func (h *handler) setWallet(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	p := walletPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidJsonFormat)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := s.SetWallet(ctx, p.Address.ToLower()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return h.stateResp(c, s)
}

type resetResp struct {
	Consumed bool         `json:"consumed"`
	Status   store.Status `json:"status"`
}

// reset
//
//	@Summary		Consume the pending error
//	@Description	Returns the failed fetch status once and soft resets the session store
//	@Tags			sessions
//	@Produce		json
//	@Param			sid	path		string	true	"session id"
//	@Success		200	{object}	resetResp
//	@Failure		404
//	@Router			/sessions/{sid}/reset [post]
func (h *handler) reset(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	st, consumed := s.ConsumeError(c.Get("ctx").(ctx.Ctx))
	return delivery.MakeJsonResp(c, http.StatusOK, resetResp{Consumed: consumed, Status: st})
}
