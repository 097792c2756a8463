package web

import (
	"fmt"
	"net"
	"strings"
)

// SelfURL derives the URL peers on the LAN use to reach the settings page,
// from the listen address and the first usable interface address. Best
// effort: with no network up it falls back to localhost so the QR code is
// still scannable from the device itself.
func SelfURL(listenAddr string) string {
	host, port := splitListenAddr(listenAddr)
	if host == "" {
		host = primaryIPv4()
	}
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" || port == "80" {
		return "http://" + host
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}

func splitListenAddr(addr string) (host, port string) {
	if addr == "" {
		return "", "80"
	}
	h, p, err := net.SplitHostPort(addr)
	if err != nil {
		return "", strings.TrimPrefix(addr, ":")
	}
	// A wildcard bind means "pick a concrete interface for display".
	if h == "0.0.0.0" || h == "::" {
		h = ""
	}
	return h, p
}

// primaryIPv4 returns the first global unicast IPv4 address, skipping
// loopback and down interfaces.
func primaryIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
				continue
			}
			return ip.String()
		}
	}
	return ""
}
