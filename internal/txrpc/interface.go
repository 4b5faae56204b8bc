package txrpc

import (
	"context"

	"github.com/dwarvesf/lending-backend/internal/model"
)

// ITxRPC submits lending pool transactions. Every method returns the hash of
// the broadcast transaction.
type ITxRPC interface {
	Deposit(ctx context.Context, req *model.DepositRequest) (string, error)
	Supply(ctx context.Context, req *model.SupplyRequest) (string, error)
	Borrow(ctx context.Context, req *model.BorrowRequest) (string, error)
	Withdraw(ctx context.Context, req *model.WithdrawRequest) (string, error)
	Repay(ctx context.Context, req *model.RepayRequest) (string, error)
	AddCollateral(ctx context.Context, req *model.AddCollateralRequest) (string, error)
	RemoveCollateral(ctx context.Context, req *model.RemoveCollateralRequest) (string, error)
}
