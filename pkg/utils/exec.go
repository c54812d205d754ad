package utils

import (
	"log"
	"os"
	"os/exec"
)

func ExecCommand(command string, args ...string) error {
	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Println(cmd.String())

	return cmd.Run()
}

func ExecCommandWithOutput(command string, args ...string) (string, error) {
	cmd := exec.Command(command, args...)
	log.Println(cmd.String())

	out, err := cmd.CombinedOutput()

	return string(out), err
}
