package service

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"sync"

	"github.com/pkg/errors"

	"github.com/sdtdops/sdtdctl/pkg/utils"
)

var (
	once    = sync.Once{}
	service Service
)

type Service interface {
	Start(ctx context.Context, serviceName string) error
	Stop(ctx context.Context, serviceName string) error
	Restart(ctx context.Context, serviceName string) error
	Status(ctx context.Context, serviceName string) error
	Enable(ctx context.Context, serviceName string) error
	DaemonReload(ctx context.Context) error
}

func Start(ctx context.Context, serviceName string) error {
	s, err := Load(ctx)
	if err != nil {
		return err
	}

	return s.Start(ctx, serviceName)
}

func Stop(ctx context.Context, serviceName string) error {
	s, err := Load(ctx)
	if err != nil {
		return err
	}

	return s.Stop(ctx, serviceName)
}

func Restart(ctx context.Context, serviceName string) error {
	s, err := Load(ctx)
	if err != nil {
		return err
	}

	err = s.Restart(ctx, serviceName)
	if err != nil {
		log.Println(errors.WithMessage(err, "failed to restart, trying stop and start"))

		err = s.Stop(ctx, serviceName)
		if err != nil {
			log.Println(errors.WithMessage(err, "failed to stop"))
		}

		return s.Start(ctx, serviceName)
	}

	return nil
}

func Status(ctx context.Context, serviceName string) error {
	s, err := Load(ctx)
	if err != nil {
		return err
	}

	return s.Status(ctx, serviceName)
}

func Enable(ctx context.Context, serviceName string) error {
	s, err := Load(ctx)
	if err != nil {
		return err
	}

	return s.Enable(ctx, serviceName)
}

func DaemonReload(ctx context.Context) error {
	s, err := Load(ctx)
	if err != nil {
		return err
	}

	return s.DaemonReload(ctx)
}

//nolint:ireturn,nolintlint
func Load(_ context.Context) (Service, error) {
	once.Do(func() {
		if utils.IsCommandAvailable("systemctl") {
			service = NewSystemd()

			return
		}

		if utils.IsCommandAvailable("service") {
			service = NewBasic()

			return
		}
	})

	if service == nil {
		return nil, ErrUnsupportedServiceManager
	}

	return service, nil
}

type Systemd struct{}

func NewSystemd() *Systemd {
	return &Systemd{}
}

func (s *Systemd) Start(_ context.Context, serviceName string) error {
	return runSystemctl("start", serviceName)
}

func (s *Systemd) Stop(_ context.Context, serviceName string) error {
	return runSystemctl("stop", serviceName)
}

func (s *Systemd) Restart(_ context.Context, serviceName string) error {
	return runSystemctl("restart", serviceName)
}

func (s *Systemd) Enable(_ context.Context, serviceName string) error {
	return runSystemctl("enable", serviceName)
}

func (s *Systemd) DaemonReload(_ context.Context) error {
	return runSystemctl("daemon-reload")
}

const (
	systemDStatusInactive = 3
	systemDStatusNotFound = 4
)

func (s *Systemd) Status(_ context.Context, serviceName string) error {
	out, err := utils.ExecCommandWithOutput("systemctl", "--no-pager", "status", serviceName)
	if out != "" {
		fmt.Print(out)
		log.Print(out)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return errors.WithMessage(err, "service status command failed")
	}
	if exitErr != nil {
		switch exitErr.ExitCode() {
		case systemDStatusInactive:
			return ErrInactiveService
		case systemDStatusNotFound:
			return NewNotFoundError(serviceName)
		default:
			return errors.Wrapf(err, "service status command failed with exit code %d", exitErr.ExitCode())
		}
	}

	return nil
}

func runSystemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()
	log.Println('\n', cmd.String())

	return cmd.Run()
}

type Basic struct{}

func NewBasic() *Basic {
	return &Basic{}
}

func (s *Basic) Start(_ context.Context, serviceName string) error {
	return runService(serviceName, "start")
}

func (s *Basic) Stop(_ context.Context, serviceName string) error {
	return runService(serviceName, "stop")
}

func (s *Basic) Restart(_ context.Context, serviceName string) error {
	return runService(serviceName, "restart")
}

func (s *Basic) Status(_ context.Context, serviceName string) error {
	return runService(serviceName, "status")
}

func (s *Basic) Enable(_ context.Context, _ string) error {
	// SysV init has no enable step; links are managed by the package.
	return nil
}

func (s *Basic) DaemonReload(_ context.Context) error {
	return nil
}

func runService(serviceName string, action string) error {
	cmd := exec.Command("service", serviceName, action)
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()
	log.Println('\n', cmd.String())

	return cmd.Run()
}
