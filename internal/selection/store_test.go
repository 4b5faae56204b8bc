package selection_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/selection"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

func describeStore(name string, newStore func() selection.IStore) {
	Describe(name, func() {
		var (
			ctx     context.Context
			store   selection.IStore
			account string
		)

		BeforeEach(func() {
			ctx = context.Background()
			store = newStore()
			account = fmt.Sprintf("alice-%d.near", time.Now().UnixNano())
		})

		Describe("#Get", func() {
			It("returns ErrSessionNotFound for an unknown account", func() {
				_, err := store.Get(ctx, account)
				Expect(err).To(MatchError(selection.ErrSessionNotFound))
			})
		})

		Describe("#Open", func() {
			It("opens the surface with a zeroed input", func() {
				session, err := store.Open(ctx, account, model.ActionSupply, "usdc.near")
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Open).To(BeTrue())
				Expect(session.Action).To(Equal(model.ActionSupply))
				Expect(session.TokenID).To(Equal("usdc.near"))
				Expect(session.Input.Amount.IsZero()).To(BeTrue())
				Expect(session.Input.UseAsCollateral).To(BeFalse())
				Expect(session.Input.IsMax).To(BeFalse())
			})

			It("resets the input of a previous selection", func() {
				_, err := store.Open(ctx, account, model.ActionSupply, "usdc.near")
				Expect(err).NotTo(HaveOccurred())
				_, err = store.SetAmount(ctx, account, decimal.NewFromInt(10), true)
				Expect(err).NotTo(HaveOccurred())

				session, err := store.Open(ctx, account, model.ActionBorrow, "usdt.near")
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Input.Amount.IsZero()).To(BeTrue())
				Expect(session.Input.IsMax).To(BeFalse())
				Expect(session.Action).To(Equal(model.ActionBorrow))
			})
		})

		Describe("input updates", func() {
			BeforeEach(func() {
				_, err := store.Open(ctx, account, model.ActionSupply, "usdc.near")
				Expect(err).NotTo(HaveOccurred())
			})

			It("stores amount and max flag", func() {
				session, err := store.SetAmount(ctx, account, decimal.RequireFromString("12.5"), true)
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Input.Amount.Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
				Expect(session.Input.IsMax).To(BeTrue())

				fetched, err := store.Get(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.Input.Amount.Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
			})

			It("stores the collateral preference", func() {
				session, err := store.ToggleUseAsCollateral(ctx, account, true)
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Input.UseAsCollateral).To(BeTrue())
			})

			It("fails for an account without a session", func() {
				_, err := store.SetAmount(ctx, "nobody.near", decimal.NewFromInt(1), false)
				Expect(err).To(MatchError(selection.ErrSessionNotFound))
			})
		})

		Describe("#Hide", func() {
			It("closes the surface but keeps the loading flag", func() {
				_, err := store.Open(ctx, account, model.ActionRepay, "usdc.near")
				Expect(err).NotTo(HaveOccurred())

				acquired, err := store.AcquireLoading(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(acquired).To(BeTrue())

				Expect(store.Hide(ctx, account)).To(Succeed())

				session, err := store.Get(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Open).To(BeFalse())
				Expect(session.Loading).To(BeTrue())
			})
		})

		Describe("loading flag", func() {
			BeforeEach(func() {
				_, err := store.Open(ctx, account, model.ActionWithdraw, "usdc.near")
				Expect(err).NotTo(HaveOccurred())
			})

			It("can only be acquired once until released", func() {
				first, err := store.AcquireLoading(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(first).To(BeTrue())

				second, err := store.AcquireLoading(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(second).To(BeFalse())

				Expect(store.ReleaseLoading(ctx, account)).To(Succeed())

				third, err := store.AcquireLoading(ctx, account)
				Expect(err).NotTo(HaveOccurred())
				Expect(third).To(BeTrue())
			})

			It("admits exactly one of many concurrent callers", func() {
				var (
					wg       sync.WaitGroup
					mu       sync.Mutex
					acquired int
				)
				for i := 0; i < 20; i++ {
					wg.Add(1)
					go func() {
						defer GinkgoRecover()
						defer wg.Done()
						ok, err := store.AcquireLoading(ctx, account)
						Expect(err).NotTo(HaveOccurred())
						if ok {
							mu.Lock()
							acquired++
							mu.Unlock()
						}
					}()
				}
				wg.Wait()
				Expect(acquired).To(Equal(1))
			})

			It("refuses accounts without a session", func() {
				_, err := store.AcquireLoading(ctx, "nobody.near")
				Expect(err).To(MatchError(selection.ErrSessionNotFound))
			})
		})
	})
}

var _ = Describe("Selection store", func() {
	describeStore("MemoryStore", func() selection.IStore {
		return selection.NewMemoryStore()
	})

	Context("with redis", func() {
		newRedisStore := func(addr string) *selection.RedisStore {
			appConfig := &config.AppConfig{
				Redis: config.RedisConfig{Addr: addr},
				Selection: config.SelectionConfig{
					Store:      config.SelectionStoreRedis,
					SessionTTL: time.Minute,
					LoadingTTL: 30 * time.Second,
				},
			}
			store, err := selection.NewRedisStore(appConfig, logger.New("test"))
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(store.Close)
			return store
		}

		// an external server can be used with SELECTION_TEST_REDIS_ADDR
		describeStore("RedisStore", func() selection.IStore {
			addr := os.Getenv("SELECTION_TEST_REDIS_ADDR")
			if addr == "" {
				addr = miniredis.RunT(GinkgoT()).Addr()
			}
			return newRedisStore(addr)
		})

		Describe("RedisStore expiry", func() {
			var (
				ctx   context.Context
				mr    *miniredis.Miniredis
				store *selection.RedisStore
			)

			BeforeEach(func() {
				ctx = context.Background()
				mr = miniredis.RunT(GinkgoT())
				store = newRedisStore(mr.Addr())
			})

			It("sets the loading flag with its TTL", func() {
				_, err := store.Open(ctx, "carol.near", model.ActionRepay, "usdc.near")
				Expect(err).NotTo(HaveOccurred())

				acquired, err := store.AcquireLoading(ctx, "carol.near")
				Expect(err).NotTo(HaveOccurred())
				Expect(acquired).To(BeTrue())
				Expect(mr.TTL("lending:selection:carol.near:loading")).To(Equal(30 * time.Second))

				mr.FastForward(31 * time.Second)
				acquired, err = store.AcquireLoading(ctx, "carol.near")
				Expect(err).NotTo(HaveOccurred())
				Expect(acquired).To(BeTrue())
			})

			It("leaves no loading key behind an expired session", func() {
				_, err := store.Open(ctx, "dave.near", model.ActionSupply, "usdc.near")
				Expect(err).NotTo(HaveOccurred())

				mr.FastForward(2 * time.Minute)

				_, err = store.AcquireLoading(ctx, "dave.near")
				Expect(err).To(MatchError(selection.ErrSessionNotFound))
				Expect(mr.Exists("lending:selection:dave.near:loading")).To(BeFalse())
			})

			It("keeps concurrent input updates", func() {
				_, err := store.Open(ctx, "erin.near", model.ActionSupply, "usdc.near")
				Expect(err).NotTo(HaveOccurred())

				var wg sync.WaitGroup
				wg.Add(2)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := store.SetAmount(ctx, "erin.near", decimal.NewFromInt(7), true)
					Expect(err).NotTo(HaveOccurred())
				}()
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := store.ToggleUseAsCollateral(ctx, "erin.near", true)
					Expect(err).NotTo(HaveOccurred())
				}()
				wg.Wait()

				session, err := store.Get(ctx, "erin.near")
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Input.Amount.Equal(decimal.NewFromInt(7))).To(BeTrue())
				Expect(session.Input.IsMax).To(BeTrue())
				Expect(session.Input.UseAsCollateral).To(BeTrue())
			})
		})
	})
})
