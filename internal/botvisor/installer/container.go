package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

const containerWorkdir = "/workspace"

// dockerAPI is the subset of the docker client the container installer uses.
type dockerAPI interface {
	ImagePull(ctx context.Context, ref string, options types.ImagePullOptions) (io.ReadCloser, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options types.ContainerStartOptions) error
	ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error)
	ContainerLogs(ctx context.Context, containerID string, options types.ContainerLogsOptions) (io.ReadCloser, error)
	ContainerRemove(ctx context.Context, containerID string, options types.ContainerRemoveOptions) error
	Close() error
}

// ContainerInstaller runs the install command in a throwaway container with the
// workspace bind-mounted, so the host only needs a docker daemon.
type ContainerInstaller struct {
	cli     dockerAPI
	image   string
	command []string
	timeout time.Duration
	logger  *logger.Logger
}

// NewContainerInstaller connects to the docker daemon at host, or to the one described
// by the DOCKER_* environment when host is empty.
func NewContainerInstaller(host, image string, command []string, timeout time.Duration) (*ContainerInstaller, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}
	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return newContainerInstaller(cli, image, command, timeout), nil
}

func newContainerInstaller(cli dockerAPI, image string, command []string, timeout time.Duration) *ContainerInstaller {
	return &ContainerInstaller{
		cli:     cli,
		image:   image,
		command: append([]string(nil), command...),
		timeout: timeout,
		logger:  logger.WithField("component", "installer-docker"),
	}
}

func (c *ContainerInstaller) Install(ctx context.Context, name, dir string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log := c.logger.WithFields("name", name, "image", c.image)

	if reader, err := c.cli.ImagePull(ctx, c.image, types.ImagePullOptions{}); err != nil {
		// the image may still be present locally
		log.Warn("image pull failed", "error", err)
	} else {
		_, _ = io.Copy(io.Discard, reader)
		_ = reader.Close()
	}

	resp, err := c.cli.ContainerCreate(ctx, &container.Config{
		Image:      c.image,
		Cmd:        c.command,
		WorkingDir: containerWorkdir,
		User:       fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()),
		Env:        []string{"HOME=/tmp", "npm_config_cache=/tmp/.npm"},
		Tty:        false,
	}, &container.HostConfig{
		Binds: []string{dir + ":" + containerWorkdir},
	}, nil, nil, "")
	if err != nil {
		return errors.Install(name, fmt.Errorf("create container: %w", err), "")
	}
	containerID := resp.ID
	log = log.WithField("container", shortID(containerID))
	log.Debug("install container created")

	defer func() {
		// ctx may already be expired; removal gets its own budget
		rmCtx, rmCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer rmCancel()
		if err := c.cli.ContainerRemove(rmCtx, containerID, types.ContainerRemoveOptions{Force: true}); err != nil {
			log.Warn("failed to remove install container", "error", err)
		}
	}()

	if err := c.cli.ContainerStart(ctx, containerID, types.ContainerStartOptions{}); err != nil {
		return errors.Install(name, fmt.Errorf("start container: %w", err), "")
	}

	var exitCode int64
	statusCh, errCh := c.cli.ContainerWait(ctx, containerID, container.WaitConditionNotRunning)
	select {
	case err := <-errCh:
		if err != nil {
			return errors.Install(name, fmt.Errorf("wait container: %w", err), "")
		}
	case status := <-statusCh:
		exitCode = status.StatusCode
		if status.Error != nil && status.Error.Message != "" {
			return errors.Install(name, fmt.Errorf("wait container: %s", status.Error.Message), "")
		}
	}

	output := c.collectLogs(ctx, containerID, log)
	if exitCode != 0 {
		return errors.Install(name, fmt.Errorf("install exited with status %d", exitCode), tail(output, maxDetails))
	}

	log.Info("dependencies installed in container")
	return nil
}

func (c *ContainerInstaller) collectLogs(ctx context.Context, containerID string, log *logger.Logger) string {
	reader, err := c.cli.ContainerLogs(ctx, containerID, types.ContainerLogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		log.Warn("failed to read install container logs", "error", err)
		return ""
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, reader); err != nil {
		log.Warn("failed to demultiplex install container logs", "error", err)
	}
	return buf.String()
}

func (c *ContainerInstaller) Close() error {
	return c.cli.Close()
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return strings.TrimSpace(id)
}
