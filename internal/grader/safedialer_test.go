package grader

import (
	"errors"
	"net/netip"
	"testing"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{ip: "127.0.0.1", blocked: true},
		{ip: "::1", blocked: true},
		{ip: "10.0.0.1", blocked: true},
		{ip: "172.16.0.1", blocked: true},
		{ip: "192.168.1.1", blocked: true},
		{ip: "169.254.169.254", blocked: true},
		{ip: "fe80::1", blocked: true},
		{ip: "100.64.0.1", blocked: true},
		{ip: "192.0.2.1", blocked: true},
		{ip: "198.19.255.254", blocked: true},
		{ip: "203.0.113.1", blocked: true},
		{ip: "0.0.0.0", blocked: true},
		{ip: "::", blocked: true},
		{ip: "255.255.255.255", blocked: true},
		{ip: "240.0.0.1", blocked: true},
		{ip: "64:ff9b::a00:1", blocked: true},
		{ip: "2001:db8::1", blocked: true},
		{ip: "::ffff:127.0.0.1", blocked: true},
		{ip: "::ffff:169.254.169.254", blocked: true},

		{ip: "8.8.8.8", blocked: false},
		{ip: "1.1.1.1", blocked: false},
		{ip: "::ffff:8.8.8.8", blocked: false},
		{ip: "100.63.255.255", blocked: false},
		{ip: "2606:4700:4700::1111", blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			addr := netip.MustParseAddr(tt.ip)
			if got := isBlockedIP(addr); got != tt.blocked {
				t.Errorf("isBlockedIP(%s) = %v, want %v", tt.ip, got, tt.blocked)
			}
		})
	}
}

func TestBlockPrivateAddresses(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "public address", address: "93.184.216.34:443", wantErr: false},
		{name: "loopback", address: "127.0.0.1:80", wantErr: true},
		{name: "private 10.x", address: "10.0.0.5:6379", wantErr: true},
		{name: "cloud metadata", address: "169.254.169.254:80", wantErr: true},
		{name: "missing port", address: "127.0.0.1", wantErr: true},
		{name: "IPv6 loopback", address: "[::1]:80", wantErr: true},
		{name: "mapped IPv4 loopback", address: "[::ffff:127.0.0.1]:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := blockPrivateAddresses("tcp", tt.address, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("blockPrivateAddresses(%q) error = %v, wantErr %v", tt.address, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errBlockedAddress) {
				t.Errorf("error %v does not wrap errBlockedAddress", err)
			}
		})
	}
}
