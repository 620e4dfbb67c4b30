package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	checkindomain "github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	employeedomain "github.com/facetrack/attendance-backend-go/internal/domain/employee"
	mqttpkg "github.com/facetrack/attendance-backend-go/internal/pkg/mqtt"
	"github.com/facetrack/attendance-backend-go/internal/pkg/queue"
	checkinservice "github.com/facetrack/attendance-backend-go/internal/service/checkin"
	employeeservice "github.com/facetrack/attendance-backend-go/internal/service/employee"
)

// Topics are the three device feeds: raw scans, new-employee registrations
// and profile updates.
type Topics struct {
	Checkin      string
	Registration string
	Update       string
}

type message struct {
	topic   string
	payload []byte
}

// Ingestor consumes the face-terminal MQTT feeds and funnels every message
// through a single-worker queue, preserving broker delivery order before
// handing off to the services.
type Ingestor struct {
	client      *mqttpkg.Client
	topics      Topics
	queue       *queue.Queue[message]
	checkinSvc  checkinservice.CheckinService
	employeeSvc employeeservice.EmployeeService
	logger      *slog.Logger
}

func NewIngestor(
	client *mqttpkg.Client,
	topics Topics,
	checkinSvc checkinservice.CheckinService,
	employeeSvc employeeservice.EmployeeService,
	logger *slog.Logger,
) *Ingestor {
	ing := &Ingestor{
		client:      client,
		topics:      topics,
		checkinSvc:  checkinSvc,
		employeeSvc: employeeSvc,
		logger:      logger,
	}
	ing.queue = queue.NewQueue(256, ing.process, logger)
	return ing
}

// Start connects to the broker and subscribes the device topics.
func (i *Ingestor) Start() error {
	i.queue.Start()

	if err := i.client.Connect(); err != nil {
		return err
	}

	for _, topic := range []string{i.topics.Checkin, i.topics.Registration, i.topics.Update} {
		if err := i.client.Subscribe(topic, i.enqueue); err != nil {
			return err
		}
	}
	return nil
}

func (i *Ingestor) Stop() {
	i.client.Close()
	i.queue.Stop()
}

func (i *Ingestor) enqueue(topic string, payload []byte) {
	if !i.queue.Enqueue(message{topic: topic, payload: payload}) {
		i.logger.Error("ingestion queue full, device message dropped", "topic", topic)
	}
}

func (i *Ingestor) process(ctx context.Context, msg message) error {
	switch msg.topic {
	case i.topics.Checkin:
		var req checkindomain.DeviceEventRequest
		if err := json.Unmarshal(msg.payload, &req); err != nil {
			return fmt.Errorf("malformed scan payload: %w", err)
		}
		return i.checkinSvc.HandleDeviceEvent(ctx, req)

	case i.topics.Registration, i.topics.Update:
		var req employeedomain.DeviceRegistrationRequest
		if err := json.Unmarshal(msg.payload, &req); err != nil {
			return fmt.Errorf("malformed registration payload: %w", err)
		}
		return i.employeeSvc.HandleDeviceRegistration(ctx, req)
	}

	i.logger.Warn("message on unexpected topic", "topic", msg.topic)
	return nil
}
