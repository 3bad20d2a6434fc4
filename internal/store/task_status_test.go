package store_test

import (
	"context"
	"errors"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/store"
)

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingKV) Set(context.Context, string, string) error   { return f.err }

var _ = Describe("TaskStatusStore", func() {
	var (
		kv  store.KV
		s   store.TaskStatusStore
		ctx context.Context
	)

	BeforeEach(func() {
		kv = store.NewMemoryKV()
		s = store.NewTaskStatusStore(kv)
		ctx = context.Background()
	})

	It("builds per-task keys", func() {
		Expect(store.TaskStatusKey(42, "mon-1-update")).To(Equal("plan:42:task:mon-1-update:status"))
	})

	It("reads unset tasks as pending", func() {
		status, err := s.Get(ctx, 1, "mon-1-x")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(model.TaskStatusPending))
	})

	It("keeps the last write", func() {
		Expect(s.Set(ctx, 1, "mon-1-x", model.TaskStatusInProgress)).To(Succeed())
		Expect(s.Set(ctx, 1, "mon-1-x", model.TaskStatusDone)).To(Succeed())

		status, err := s.Get(ctx, 1, "mon-1-x")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(model.TaskStatusDone))

		raw, err := kv.Get(ctx, "plan:1:task:mon-1-x:status")
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(Equal("done"))
	})

	It("keeps plans apart", func() {
		Expect(s.Set(ctx, 1, "mon-1-x", model.TaskStatusSkipped)).To(Succeed())

		status, err := s.Get(ctx, 2, "mon-1-x")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(model.TaskStatusPending))
	})

	It("treats an unknown stored value as pending", func() {
		Expect(kv.Set(ctx, store.TaskStatusKey(1, "tue-2-y"), "archived")).To(Succeed())

		status, err := s.Get(ctx, 1, "tue-2-y")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(model.TaskStatusPending))
	})

	It("passes through backend failures", func() {
		boom := errors.New("backend down")
		s = store.NewTaskStatusStore(failingKV{err: boom})

		_, err := s.Get(ctx, 1, "mon-1-x")
		Expect(err).To(MatchError(boom))
		Expect(s.Set(ctx, 1, "mon-1-x", model.TaskStatusDone)).To(MatchError(boom))
	})
})

var _ = Describe("MemoryKV", func() {
	It("returns ErrNotFound for missing keys", func() {
		_, err := store.NewMemoryKV().Get(context.Background(), "missing")
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
	})
})

var _ = Describe("RedisKV", func() {
	var (
		client *redis.Client
		kv     store.KV
		ctx    context.Context
	)

	BeforeEach(func() {
		url := os.Getenv("REDIS_TEST_URL")
		if url == "" {
			Skip("REDIS_TEST_URL not set")
		}
		opts, err := redis.ParseURL(url)
		Expect(err).NotTo(HaveOccurred())
		client = redis.NewClient(opts)
		kv = store.NewRedisKV(client)
		ctx = context.Background()
		DeferCleanup(func() {
			client.Del(ctx, "growthplan:test:key")
			_ = client.Close()
		})
	})

	It("sets and gets values", func() {
		Expect(kv.Set(ctx, "growthplan:test:key", "in_progress")).To(Succeed())
		v, err := kv.Get(ctx, "growthplan:test:key")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("in_progress"))
	})

	It("maps missing keys to ErrNotFound", func() {
		_, err := kv.Get(ctx, "growthplan:test:missing")
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
	})
})
