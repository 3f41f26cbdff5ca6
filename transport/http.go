package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	productapp "github.com/rewardslab/rewards-backend/application/product"
	rewardsapp "github.com/rewardslab/rewards-backend/application/rewards"
	userapp "github.com/rewardslab/rewards-backend/application/user"
	"github.com/rewardslab/rewards-backend/cmd/config"
	"github.com/rewardslab/rewards-backend/constant"
	_ "github.com/rewardslab/rewards-backend/docs"
	"github.com/rewardslab/rewards-backend/model"
	utilsContext "github.com/rewardslab/rewards-backend/utils/context"
	"github.com/rewardslab/rewards-backend/utils/errors"
	validatorx "github.com/rewardslab/rewards-backend/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp productapp.ProductApp
	UserApp    userapp.UserApp
	RewardsApp rewardsapp.RewardsApp
}

func NewTransport(cfg *config.Config, productApp productapp.ProductApp, userApp userapp.UserApp, rewardsApp rewardsapp.RewardsApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp: productApp,
		UserApp:    userApp,
		RewardsApp: rewardsApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Protected routes (JWT resolved by the gateway authorizer)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/users", rh.SaveUserInfo).Methods(http.MethodPost)
	mux.HandleFunc("/users", rh.GetUsers).Methods(http.MethodGet)
	mux.HandleFunc("/process/{uetr}", rh.ProcessUETR).Methods(http.MethodPost)

	// Internal workflow task replay, guarded by a static key
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Server.InternalAPIKey))
	internal.HandleFunc("/tasks/add-points", rh.AddPoints).Methods(http.MethodPost)
	internal.HandleFunc("/tasks/add-card", rh.AddCard).Methods(http.MethodPost)
	internal.HandleFunc("/tasks/update-user", rh.UpdateUser).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware())

	return mux
}

// Health handler
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "OK"})
}

// ListProducts handler
// @Summary List products
// @Description Filtered, sorted, paginated product listing
// @Tags Products
// @Produce json
// @Param gender query string false "Comma-separated gender tags"
// @Param category query string false "Category (exact match)"
// @Param colors query string false "Comma-separated colors"
// @Param price query string false "Price bucket: below25, 25to75, above75"
// @Param rating query number false "Minimum rating"
// @Param sort query string false "price_asc or price_desc"
// @Param page query int false "Page number (offset mode)"
// @Param pageSize query int false "Page size, 1-100, default 20"
// @Param cursor query string false "Opaque forward cursor (cursor mode)"
// @Success 200 {object} model.ProductListResponse
// @Failure 401 {object} errorBody
// @Security BearerAuth
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetUsername(ctx); !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	q := r.URL.Query()
	req := &model.ListProductsRequest{
		Gender:   q.Get("gender"),
		Category: q.Get("category"),
		Colors:   q.Get("colors"),
		Price:    q.Get("price"),
		Rating:   q.Get("rating"),
		Sort:     q.Get("sort"),
		Page:     q.Get("page"),
		PageSize: q.Get("pageSize"),
		Cursor:   q.Get("cursor"),
	}

	res, err := s.ProductApp.ListProducts(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 200 {object} model.CreateProductResponse
// @Failure 400 {object} errorBody
// @Security BearerAuth
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := utilsContext.GetUsername(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, username, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SaveUserInfo handler
// @Summary Save user information
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SaveUserRequest true "Save User Request"
// @Success 200 {object} model.SaveUserResponse
// @Failure 400 {object} errorBody
// @Security BearerAuth
// @Router /users [post]
func (s *RestHandler) SaveUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := utilsContext.GetUsername(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SaveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.SaveInfo(ctx, username, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} model.UserListResponse
// @Failure 401 {object} errorBody
// @Security BearerAuth
// @Router /users [get]
func (s *RestHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetUsername(ctx); !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ProcessUETR handler
// @Summary Start the rewards workflow for a user
// @Tags Rewards
// @Produce json
// @Param uetr path string true "User UETR"
// @Success 202 {object} model.ProcessUETRResponse
// @Failure 404 {object} errorBody
// @Security BearerAuth
// @Router /process/{uetr} [post]
func (s *RestHandler) ProcessUETR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uetr := mux.Vars(r)["uetr"]

	res, err := s.UserApp.ProcessUETR(ctx, uetr)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, res)
}

func (s *RestHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	s.runTask(w, r, s.RewardsApp.AddPoints)
}

func (s *RestHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	s.runTask(w, r, s.RewardsApp.AddCard)
}

func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	s.runTask(w, r, s.RewardsApp.UpdateUser)
}

func (s *RestHandler) runTask(w http.ResponseWriter, r *http.Request, step func(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error)) {
	var task model.RewardsTask
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if task.UETR == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	out, err := step(r.Context(), &task)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, out)
}
