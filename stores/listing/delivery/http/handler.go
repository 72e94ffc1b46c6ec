package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anft-xyz/goapi/base/amount"
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/delivery"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/stores/listing/session"
)

const defaultWaitTimeout = 10 * time.Second

var (
	met     metrics.Service
	timeNow = time.Now
)

type HandlerCfg struct {
	UseCase  listing.UseCase
	Sessions *session.Manager
	// timezone of the formatted dates, UTC when nil
	Location *time.Location
	// bounds how long a session detail fetch waits for the page fetch
	WaitTimeout time.Duration
}

type handler struct {
	uc       listing.UseCase
	sessions *session.Manager
	loc      *time.Location
	wait     time.Duration
}

func New(e *echo.Echo, cfg HandlerCfg) {
	met = metrics.New("listing")

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	wait := cfg.WaitTimeout
	if wait <= 0 {
		wait = defaultWaitTimeout
	}
	h := &handler{
		uc:       cfg.UseCase,
		sessions: cfg.Sessions,
		loc:      loc,
		wait:     wait,
	}

	gs := e.Group("/listings")

	gs.GET("", h.listFiltered)

	gs.POST("", h.listByAddresses)

	gs.GET("/:id", h.get)

	gs.GET("/:id/options", h.getOptions)

	gs.GET("/:id/estimate", h.estimate)

	ss := e.Group("/sessions")

	ss.POST("", h.createSession)

	ss.GET("/:sid", h.getSession)

	ss.DELETE("/:sid", h.closeSession)

	ss.POST("/:sid/listings", h.fetchEntities)

	ss.POST("/:sid/listings/by-address", h.fetchByAddresses)

	ss.POST("/:sid/listings/:id", h.fetchEntity)

	ss.POST("/:sid/listings/:id/options", h.fetchOptions)

	ss.PUT("/:sid/wallet", h.setWallet)

	ss.POST("/:sid/reset", h.reset)
}

type filterParams struct {
	listing.Filter
	Ownership listing.OwnershipOption `query:"ownership" validate:"omitempty,oneof=all yetOwned owned"`
	Viewer    domain.Address          `query:"viewer" validate:"omitempty,address"`
}

// bindFilter reads the filter from the query string, fills the defaults and resolves ownership
func bindFilter(c echo.Context) (listing.Filter, error) {
	p := filterParams{Filter: listing.DefaultFilter()}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &p); err != nil {
		return listing.Filter{}, domain.ErrInvalidFilter
	}
	if p.Size == 0 {
		p.Size = listing.DefaultPageSize
	}
	if p.Sort == "" {
		p.Sort = listing.DefaultSort
	}
	if p.Ownership != "" {
		if p.Ownership == listing.OwnershipOwned && p.Viewer.IsEmpty() {
			return listing.Filter{}, domain.ErrInvalidAddress
		}
		p.Filter.SetOwnership(p.Ownership, p.Viewer)
	}
	if err := c.Validate(&p); err != nil {
		return listing.Filter{}, err
	}
	return p.Filter, nil
}

// listFiltered
//
//	@Summary		List listings
//	@Description	Page of listings matching the filter, with value and daily payment read from chain when available
//	@Tags			listings
//	@Produce		json
//	@Param			page			query		int		false	"page index"	example(0)
//	@Param			size			query		int		false	"page size"		example(5)
//	@Param			sort			query		string	false	"sort"			example(createdDate,desc)
//	@Param			provinceCode	query		string	false	"province code"
//	@Param			districtCode	query		string	false	"district code"
//	@Param			commercialTypes	query		string	false	"SELL, RENT or SELL,RENT"
//	@Param			miningFeeRange	query		string	false	"fee bucket"	Enums(EXTREMELY_LOW, VERY_LOW, LOW, MEDIUM, HIGH, VERY_HIGH)
//	@Param			areaRange		query		string	false	"area bucket"	Enums(EXTREMELY_LOW, VERY_LOW, LOW, MEDIUM, HIGH, VERY_HIGH)
//	@Param			ownership		query		string	false	"ownership"		Enums(all, yetOwned, owned)
//	@Param			viewer			query		string	false	"wallet address, required with ownership=owned"
//	@Success		200				{object}	PageView
//	@Failure		400
//	@Failure		502
//	@Router			/listings [get]
func (h *handler) listFiltered(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	filter, err := bindFilter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	page, err := h.uc.ListFiltered(ctx, filter)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("list.count", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, newPageView(page, timeNow(), h.loc))
}

type addressesPayload struct {
	Addresses []domain.Address `json:"addresses" validate:"required,max=100,dive,address"`
}

// listByAddresses
//
//	@Summary	List listings by contract address
//	@Tags		listings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		addressesPayload	true	"contract addresses"
//	@Success	200		{object}	PageView
//	@Failure	400
//	@Router		/listings [post]
func (h *handler) listByAddresses(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := addressesPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidJsonFormat)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	page, err := h.uc.ListByAddresses(ctx, p.Addresses)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, newPageView(page, timeNow(), h.loc))
}

// get
//
//	@Summary		Get listing
//	@Description	Listing with every on-chain detail field, falls back to the off-chain record when the chain is unreachable
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	ListingView
//	@Failure		404
//	@Router			/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	l, err := h.uc.GetOne(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("get.count", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, newListingView(l, timeNow(), h.loc))
}

// getOptions
//
//	@Summary	Get listing options with stakes
//	@Tags		listings
//	@Produce	json
//	@Param		id			path		string	true	"listing id"
//	@Param		stakeholder	query		string	false	"wallet address"
//	@Success	200			{object}	ListingView
//	@Failure	400
//	@Failure	503
//	@Router		/listings/{id}/options [get]
func (h *handler) getOptions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	stakeholder, err := optionalAddress(c.QueryParam("stakeholder"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.uc.GetOne(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	out, err := h.uc.GetOptionsWithStakes(ctx, l, stakeholder)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, newListingView(out, timeNow(), h.loc))
}

type Estimate struct {
	Amount         string `json:"amount"`
	Ownership      int64  `json:"ownership"`
	OwnershipDate  string `json:"ownershipDate"`
	WithdrawAmount string `json:"withdrawAmount"`
	ValidOwner     bool   `json:"validOwner"`
}

// estimate
//
//	@Summary		Estimate ownership
//	@Description	Ownership expiry after paying amount, and the withdrawable value of the current ownership
//	@Tags			listings
//	@Produce		json
//	@Param			id		path		string	true	"listing id"
//	@Param			amount	query		string	true	"token amount"	example(1.5)
//	@Param			viewer	query		string	false	"wallet address"
//	@Success		200		{object}	Estimate
//	@Failure		400
//	@Failure		503
//	@Router			/listings/{id}/estimate [get]
func (h *handler) estimate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	raw := c.QueryParam("amount")
	if raw == "" || !amount.NoMoreThanOneDot(raw) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	viewer, err := optionalAddress(c.QueryParam("viewer"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.uc.GetOne(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if l.DailyPayment == nil || l.Ownership == nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, domain.ErrNoContract)
	}

	now := timeNow()
	amt := amount.ParseEther(raw)
	dailyPayment := listing.ToInt(l.DailyPayment)
	current, _ := l.OwnershipUnix()
	ownership := listing.EstimateOwnership(amt, dailyPayment, listing.ToInt(l.Ownership), now)

	return delivery.MakeJsonResp(c, http.StatusOK, Estimate{
		Amount:         amount.FormatToken(amt, true),
		Ownership:      ownership,
		OwnershipDate:  listing.FormatUnixDate(ownership, h.loc),
		WithdrawAmount: amount.InsertCommas(listing.EstimateWithdrawAmount(dailyPayment, current, now).StringFixed(amount.DefaultDecimals)),
		ValidOwner:     listing.ValidateOwnership(viewer, l, now),
	})
}

func optionalAddress(s string) (domain.Address, error) {
	if s == "" {
		return "", nil
	}
	return domain.ParseAddress(s)
}
