package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/common/logger"
	"basegraph.app/growthplan/internal/http/middleware"
)

const traceHeader = "X-Trace-Id"

var _ = Describe("HTTP middleware", func() {
	var (
		buf      bytes.Buffer
		engine   *gin.Engine
		previous *slog.Logger
	)

	logLines := func() []map[string]any {
		var lines []map[string]any
		for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			if raw == "" {
				continue
			}
			var line map[string]any
			Expect(json.Unmarshal([]byte(raw), &line)).To(Succeed())
			lines = append(lines, line)
		}
		return lines
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		buf.Reset()
		previous = slog.Default()
		slog.SetDefault(slog.New(logger.NewTraceHandler(slog.NewJSONHandler(&buf, nil))))

		engine = gin.New()
		engine.Use(middleware.RequestID(traceHeader), middleware.Recovery(), middleware.Logger())
		engine.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"request_id": middleware.RequestIDFrom(c)})
		})
		engine.GET("/missing", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
		engine.GET("/boom", func(c *gin.Context) {
			panic("kaboom")
		})
	})

	AfterEach(func() {
		slog.SetDefault(previous)
	})

	do := func(path, requestID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if requestID != "" {
			req.Header.Set(traceHeader, requestID)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	Describe("RequestID", func() {
		It("echoes the caller's id and exposes it to handlers", func() {
			w := do("/ok", "req-123")

			Expect(w.Header().Get(traceHeader)).To(Equal("req-123"))
			Expect(w.Body.String()).To(ContainSubstring(`"request_id":"req-123"`))
		})

		It("mints an id when the header is missing or too long", func() {
			w := do("/ok", "")
			Expect(w.Header().Get(traceHeader)).To(HaveLen(36))

			w = do("/ok", strings.Repeat("x", 129))
			Expect(w.Header().Get(traceHeader)).To(HaveLen(36))
		})
	})

	Describe("Logger", func() {
		It("writes an access line carrying the request id from the context", func() {
			do("/ok", "req-log")

			lines := logLines()
			Expect(lines).To(HaveLen(1))
			Expect(lines[0]).To(HaveKeyWithValue("msg", "request served"))
			Expect(lines[0]).To(HaveKeyWithValue("request_id", "req-log"))
			Expect(lines[0]).To(HaveKeyWithValue("component", "growthplan.http"))
			Expect(lines[0]).To(HaveKeyWithValue("route", "/ok"))
			Expect(lines[0]).To(HaveKeyWithValue("status", BeNumerically("==", 200)))
		})

		It("logs client errors at warn", func() {
			do("/missing", "req-404")

			lines := logLines()
			Expect(lines).To(HaveLen(1))
			Expect(lines[0]).To(HaveKeyWithValue("level", "WARN"))
			Expect(lines[0]).To(HaveKeyWithValue("msg", "request rejected"))
		})
	})

	Describe("Recovery", func() {
		It("answers 500 with the request id and logs the panic", func() {
			w := do("/boom", "req-panic")

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			var body map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("error", "internal server error"))
			Expect(body).To(HaveKeyWithValue("request_id", "req-panic"))

			var panicLine map[string]any
			for _, line := range logLines() {
				if line["msg"] == "handler panicked" {
					panicLine = line
				}
			}
			Expect(panicLine).NotTo(BeNil())
			Expect(panicLine).To(HaveKeyWithValue("request_id", "req-panic"))
			Expect(panicLine).To(HaveKeyWithValue("panic", "kaboom"))
		})
	})
})
