package txrpc

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/dwarvesf/lending-backend/internal/model"
)

var (
	ErrInvalidTokenID     = errors.New("txrpc: token id is not a contract address")
	ErrUnsupportedRequest = errors.New("txrpc: unsupported request")
)

// Dispatch invokes the primitive that matches the concrete request type.
func Dispatch(ctx context.Context, rpc ITxRPC, req model.TxRequest) (string, error) {
	switch r := req.(type) {
	case *model.DepositRequest:
		return rpc.Deposit(ctx, r)
	case *model.SupplyRequest:
		return rpc.Supply(ctx, r)
	case *model.BorrowRequest:
		return rpc.Borrow(ctx, r)
	case *model.WithdrawRequest:
		return rpc.Withdraw(ctx, r)
	case *model.RepayRequest:
		return rpc.Repay(ctx, r)
	case *model.AddCollateralRequest:
		return rpc.AddCollateral(ctx, r)
	case *model.RemoveCollateralRequest:
		return rpc.RemoveCollateral(ctx, r)
	default:
		return "", pkgerrors.Wrapf(ErrUnsupportedRequest, "%T", req)
	}
}
