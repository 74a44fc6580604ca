package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bytebank/backend/internal/application/usecase/ledger"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/integration/entrypoint/dto"
	"github.com/bytebank/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles balance and investment summary endpoints.
type LedgerController struct {
	balanceUseCase *ledger.GetBalanceUseCase
	summaryUseCase *ledger.GetInvestmentSummaryUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	balanceUseCase *ledger.GetBalanceUseCase,
	summaryUseCase *ledger.GetInvestmentSummaryUseCase,
) *LedgerController {
	return &LedgerController{
		balanceUseCase: balanceUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// GetBalance handles GET /ledger/balance requests.
func (c *LedgerController) GetBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), ledger.GetBalanceInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output))
}

// GetInvestmentSummary handles GET /ledger/investments requests.
func (c *LedgerController) GetInvestmentSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), ledger.GetInvestmentSummaryInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve investment summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentSummaryResponse(output))
}
