package notify_test

import (
	"context"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/notify"
)

var _ = Describe("RedisDispatcher", func() {
	It("appends the notification to the stream", func() {
		url := os.Getenv("REDIS_TEST_URL")
		if url == "" {
			Skip("REDIS_TEST_URL not set")
		}
		opts, err := redis.ParseURL(url)
		Expect(err).NotTo(HaveOccurred())
		client := redis.NewClient(opts)
		ctx := context.Background()
		stream := "growthplan_notifications_test"
		DeferCleanup(func() {
			client.Del(ctx, stream)
			_ = client.Close()
		})

		ok := notify.NewRedisDispatcher(client, stream, nil).Send(ctx, model.Notification{
			ID: "n-2", Category: model.NotificationCategoryPlanGenerated, MessageText: "hi",
			Priority: model.NotificationPriorityHigh, Timestamp: time.Now(),
		}, "owner@example.com")
		Expect(ok).To(BeTrue())

		entries, err := client.XRange(ctx, stream, "-", "+").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Values).To(HaveKeyWithValue("notification_id", "n-2"))
		Expect(entries[0].Values).To(HaveKeyWithValue("destination", "owner@example.com"))
	})
})
