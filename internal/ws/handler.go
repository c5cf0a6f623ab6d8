package ws

import (
	"math/rand"
	"net/http"

	"github.com/GriffinCanCode/ProbKit/internal/dist"
	"github.com/GriffinCanCode/ProbKit/internal/logging"
	"github.com/GriffinCanCode/ProbKit/internal/monitoring"
	"github.com/GriffinCanCode/ProbKit/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// chunkSize is the number of samples per streamed message.
const chunkSize = 1000

// Handler manages WebSocket sample streaming
type Handler struct {
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	maxBatch int
}

// NewHandler creates a new WebSocket handler
func NewHandler(metrics *monitoring.Metrics, logger *logging.Logger, maxBatch int) *Handler {
	return &Handler{
		metrics:  metrics,
		logger:   logger,
		maxBatch: maxBatch,
	}
}

// HandleConnection handles WebSocket upgrade and sample requests
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	// Send welcome message
	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to ProbKit Gaussian Service",
	})

	// Listen for sample requests
	for {
		var req types.SampleRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		h.handleSample(conn, req)
	}
}

// handleSample validates the request and streams samples in chunks
func (h *Handler) handleSample(conn *websocket.Conn, req types.SampleRequest) {
	if req.Count <= 0 || (h.maxBatch > 0 && req.Count > h.maxBatch) {
		h.sendError(conn, "count must be positive and within the batch limit")
		return
	}

	d, err := dist.New(req.Mean, req.Variance)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}

	var src *rand.Rand
	if req.Seed != nil {
		src = rand.New(rand.NewSource(*req.Seed))
	} else {
		src = rand.New(rand.NewSource(rand.Int63()))
	}

	remaining := req.Count
	seq := 0
	for remaining > 0 {
		n := chunkSize
		if remaining < n {
			n = remaining
		}

		values := make([]float64, n)
		switch d := d.(type) {
		case dist.Normal:
			for i := range values {
				values[i] = src.NormFloat64()*d.StdDev() + d.Mu
			}
		case dist.PointMass:
			for i := range values {
				values[i] = d.At
			}
		}

		if !h.send(conn, map[string]interface{}{
			"type":   "samples",
			"seq":    seq,
			"values": values,
		}) {
			return
		}

		h.metrics.WSSamples.Add(float64(n))
		remaining -= n
		seq++
	}

	h.send(conn, map[string]interface{}{
		"type":  "complete",
		"count": req.Count,
	})
}

// send writes a JSON message, reporting whether the connection is still
// usable
func (h *Handler) send(conn *websocket.Conn, msg map[string]interface{}) bool {
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Warn("websocket write error", zap.Error(err))
		return false
	}
	return true
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, map[string]interface{}{
		"type":    "error",
		"message": message,
	})
}
