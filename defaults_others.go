// +build !windows,!darwin

package cputemp

func init() {
	DefaultCfgPath = "/etc/cputemp/cputemp.conf"
}
