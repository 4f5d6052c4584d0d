package server

import (
	"context"
	"time"

	"github.com/sphynkx/ytstorage/driver"
	pb "github.com/sphynkx/ytstorage/proto"
)

// InfoServer answers identity and health queries about the running
// node. Every field is best effort; GetInfo never fails because a
// backend cannot report something.
type InfoServer struct {
	pb.UnimplementedInfoServiceServer

	appName    string
	version    string
	instanceID string
	drv        driver.Driver
	labels     map[string]string
	started    time.Time
}

// NewInfoServer captures the node identity at startup.
func NewInfoServer(appName, version, instanceID string, drv driver.Driver, labels map[string]string) *InfoServer {
	return &InfoServer{
		appName:    appName,
		version:    version,
		instanceID: instanceID,
		drv:        drv,
		labels:     labels,
		started:    time.Now(),
	}
}

func (s *InfoServer) GetInfo(ctx context.Context, _ *pb.InfoRequest) (*pb.InfoResponse, error) {
	resp := &pb.InfoResponse{
		AppName:       s.appName,
		Version:       s.version,
		InstanceId:    s.instanceID,
		DriverKind:    s.drv.Kind(),
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Labels:        s.labels,
	}
	// Capacity is optional; zero fields mean unreported.
	if cap, err := driver.ReportCapacity(ctx, s.drv); err == nil {
		resp.CapacityTotalBytes = cap.TotalBytes
		resp.CapacityFreeBytes = cap.FreeBytes
	}
	return resp, nil
}
