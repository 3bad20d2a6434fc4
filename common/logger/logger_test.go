package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/core/config"
)

var _ = Describe("TraceHandler", func() {
	var buf bytes.Buffer

	BeforeEach(func() {
		buf.Reset()
	})

	decode := func() map[string]any {
		var line map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &line)).To(Succeed())
		return line
	}

	It("adds context log fields to each record", func() {
		log := slog.New(newHandler(config.Config{Env: "production"}, &buf))

		ctx := WithLogFields(context.Background(), LogFields{PlanID: Ptr(int64(42)), Component: "test"})
		ctx = WithLogFields(ctx, LogFields{Goal: Ptr("sales"), TaskID: Ptr("mon-1-x"), RequestID: Ptr("req-7")})
		log.InfoContext(ctx, "hello")

		line := decode()
		Expect(line).To(HaveKeyWithValue("plan_id", BeNumerically("==", 42)))
		Expect(line).To(HaveKeyWithValue("goal", "sales"))
		Expect(line).To(HaveKeyWithValue("task_id", "mon-1-x"))
		Expect(line).To(HaveKeyWithValue("component", "test"))
		Expect(line).To(HaveKeyWithValue("request_id", "req-7"))
		Expect(line).NotTo(HaveKey("user_id"))
		Expect(line).NotTo(HaveKey("trace_id"))
	})

	It("keeps earlier fields when later ones are empty", func() {
		ctx := WithLogFields(context.Background(), LogFields{UserID: Ptr("u-1"), Component: "a"})
		ctx = WithLogFields(ctx, LogFields{})

		fields := GetLogFields(ctx)
		Expect(*fields.UserID).To(Equal("u-1"))
		Expect(fields.Component).To(Equal("a"))
	})

	It("logs at info in production and debug in development", func() {
		prod := newHandler(config.Config{Env: "production"}, &buf)
		dev := newHandler(config.Config{Env: "development"}, &buf)

		Expect(prod.Enabled(context.Background(), slog.LevelDebug)).To(BeFalse())
		Expect(dev.Enabled(context.Background(), slog.LevelDebug)).To(BeTrue())
	})
})
