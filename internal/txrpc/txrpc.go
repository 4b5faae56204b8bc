package txrpc

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/dwarvesf/lending-backend/contracts/erc20"
	"github.com/dwarvesf/lending-backend/contracts/lendingpool"
	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

// poolTransactor is the write side of the lending pool binding.
type poolTransactor interface {
	DepositNative(opts *bind.TransactOpts, useAsCollateral bool) (*types.Transaction, error)
	Supply(opts *bind.TransactOpts, token common.Address, amount *big.Int, maxAmount *big.Int, useAsCollateral bool) (*types.Transaction, error)
	Borrow(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
	Withdraw(opts *bind.TransactOpts, token common.Address, amount *big.Int, collateralAmount *big.Int, maxAmount *big.Int) (*types.Transaction, error)
	Repay(opts *bind.TransactOpts, token common.Address, amount *big.Int, maxAmount *big.Int) (*types.Transaction, error)
	IncreaseCollateral(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
	DecreaseCollateral(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
}

type decimalsFunc func(ctx context.Context, token common.Address) (uint8, error)

type TxRPC struct {
	appConfig  *config.AppConfig
	logger     *logger.Logger
	pool       poolTransactor
	signer     *bind.TransactOpts
	decimalsOf decimalsFunc

	mu       sync.Mutex
	decimals map[common.Address]int
}

func New(appConfig *config.AppConfig, logger *logger.Logger) (ITxRPC, error) {
	client, err := ethclient.Dial(appConfig.Blockchain.RPCEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "dial rpc endpoint")
	}

	key, err := parsePrivateKey(appConfig.Blockchain.SignerPrivateKey)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "read chain id")
	}

	signer, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "build signer")
	}

	if !common.IsHexAddress(appConfig.Blockchain.LendingPoolAddr) {
		return nil, errors.Errorf("invalid lending pool address %q", appConfig.Blockchain.LendingPoolAddr)
	}
	pool, err := lendingpool.NewLendingPoolTransactor(common.HexToAddress(appConfig.Blockchain.LendingPoolAddr), client)
	if err != nil {
		return nil, errors.Wrap(err, "bind lending pool")
	}

	logger.Info("[txrpc.New] lending pool client ready", map[string]string{
		"pool":    appConfig.Blockchain.LendingPoolAddr,
		"signer":  signer.From.Hex(),
		"chainID": chainID.String(),
	})

	return newTxRPC(appConfig, logger, pool, signer, erc20Decimals(client)), nil
}

func newTxRPC(appConfig *config.AppConfig, logger *logger.Logger, pool poolTransactor, signer *bind.TransactOpts, decimalsOf decimalsFunc) *TxRPC {
	return &TxRPC{
		appConfig:  appConfig,
		logger:     logger,
		pool:       pool,
		signer:     signer,
		decimalsOf: decimalsOf,
		decimals:   make(map[common.Address]int),
	}
}

func erc20Decimals(backend bind.ContractCaller) decimalsFunc {
	return func(ctx context.Context, token common.Address) (uint8, error) {
		caller, err := erc20.NewErc20Caller(token, backend)
		if err != nil {
			return 0, err
		}
		return caller.Decimals(&bind.CallOpts{Context: ctx})
	}
}

func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "parse signer private key")
	}
	return key, nil
}

func (t *TxRPC) Deposit(ctx context.Context, req *model.DepositRequest) (string, error) {
	opts := t.transactOpts(ctx)
	opts.Value = encodeAmount(req.Amount, t.appConfig.Blockchain.NativeDecimals)

	tx, err := t.pool.DepositNative(opts, req.UseAsCollateral)
	return t.sent("Deposit", t.appConfig.Blockchain.NativeTokenID, tx, err)
}

func (t *TxRPC) Supply(ctx context.Context, req *model.SupplyRequest) (string, error) {
	token, decimals, err := t.token(ctx, req.TokenID)
	if err != nil {
		return "", err
	}

	tx, err := t.pool.Supply(
		t.transactOpts(ctx),
		token,
		encodeAmount(req.Amount, decimals),
		encodeMaxAmount(req.MaxAmount, decimals),
		req.UseAsCollateral,
	)
	return t.sent("Supply", req.TokenID, tx, err)
}

func (t *TxRPC) Borrow(ctx context.Context, req *model.BorrowRequest) (string, error) {
	token, decimals, err := t.token(ctx, req.TokenID)
	if err != nil {
		return "", err
	}
	decimals += req.ExtraDecimals

	tx, err := t.pool.Borrow(t.transactOpts(ctx), token, encodeAmount(req.Amount, decimals))
	return t.sent("Borrow", req.TokenID, tx, err)
}

func (t *TxRPC) Withdraw(ctx context.Context, req *model.WithdrawRequest) (string, error) {
	token, decimals, err := t.token(ctx, req.TokenID)
	if err != nil {
		return "", err
	}
	decimals += req.ExtraDecimals

	tx, err := t.pool.Withdraw(
		t.transactOpts(ctx),
		token,
		encodeAmount(req.Amount, decimals),
		encodeAmount(req.CollateralAmount, decimals),
		encodeMaxAmount(req.MaxAmount, decimals),
	)
	return t.sent("Withdraw", req.TokenID, tx, err)
}

func (t *TxRPC) Repay(ctx context.Context, req *model.RepayRequest) (string, error) {
	token, decimals, err := t.token(ctx, req.TokenID)
	if err != nil {
		return "", err
	}

	tx, err := t.pool.Repay(
		t.transactOpts(ctx),
		token,
		encodeAmount(req.Amount, decimals),
		encodeMaxAmount(req.MaxAmount, decimals),
	)
	return t.sent("Repay", req.TokenID, tx, err)
}

func (t *TxRPC) AddCollateral(ctx context.Context, req *model.AddCollateralRequest) (string, error) {
	token, decimals, err := t.token(ctx, req.TokenID)
	if err != nil {
		return "", err
	}
	decimals += req.ExtraDecimals

	tx, err := t.pool.IncreaseCollateral(t.transactOpts(ctx), token, encodeCollateralAmount(req.Amount, decimals))
	return t.sent("AddCollateral", req.TokenID, tx, err)
}

func (t *TxRPC) RemoveCollateral(ctx context.Context, req *model.RemoveCollateralRequest) (string, error) {
	token, decimals, err := t.token(ctx, req.TokenID)
	if err != nil {
		return "", err
	}
	decimals += req.ExtraDecimals

	tx, err := t.pool.DecreaseCollateral(t.transactOpts(ctx), token, encodeCollateralAmount(req.Amount, decimals))
	return t.sent("RemoveCollateral", req.TokenID, tx, err)
}

func (t *TxRPC) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *t.signer
	opts.Context = ctx
	return &opts
}

// token resolves a token id to its contract address and token decimals.
func (t *TxRPC) token(ctx context.Context, tokenID string) (common.Address, int, error) {
	if tokenID == t.appConfig.Blockchain.NativeTokenID {
		if !common.IsHexAddress(t.appConfig.Blockchain.NativeTokenAddr) {
			return common.Address{}, 0, errors.Wrapf(ErrInvalidTokenID, "native token %s has no wrapped contract", tokenID)
		}
		return common.HexToAddress(t.appConfig.Blockchain.NativeTokenAddr), t.appConfig.Blockchain.NativeDecimals, nil
	}

	if !common.IsHexAddress(tokenID) {
		return common.Address{}, 0, errors.Wrap(ErrInvalidTokenID, tokenID)
	}
	address := common.HexToAddress(tokenID)

	t.mu.Lock()
	decimals, ok := t.decimals[address]
	t.mu.Unlock()
	if ok {
		return address, decimals, nil
	}

	raw, err := t.decimalsOf(ctx, address)
	if err != nil {
		t.logger.Error("[TxRPC][token] cannot read decimals", map[string]string{
			"token": tokenID,
			"error": err.Error(),
		})
		return common.Address{}, 0, errors.Wrapf(err, "read decimals of %s", tokenID)
	}

	t.mu.Lock()
	t.decimals[address] = int(raw)
	t.mu.Unlock()

	return address, int(raw), nil
}

func (t *TxRPC) sent(method, tokenID string, tx *types.Transaction, err error) (string, error) {
	if err != nil {
		t.logger.Error("[TxRPC]["+method+"]", map[string]string{
			"token": tokenID,
			"error": err.Error(),
		})
		return "", errors.Wrapf(err, "%s %s", strings.ToLower(method), tokenID)
	}

	hash := tx.Hash().Hex()
	t.logger.Info("[TxRPC]["+method+"] transaction sent", map[string]string{
		"token":  tokenID,
		"txHash": hash,
	})
	return hash, nil
}
