package database

import (
	"testing"
	"time"

	"github.com/JonMunkholm/clientes/internal/config"
)

func testConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "importer",
		Password:        "s3cret",
		Name:            "clientes",
		SSLMode:         "disable",
		MaxConns:        6,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 5 * time.Minute,
	}
}

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(testConfig())
	if err != nil {
		t.Fatalf("PoolConfig() error = %v", err)
	}

	if pc.MaxConns != 6 || pc.MinConns != 1 {
		t.Errorf("conns = %d/%d, want 6/1", pc.MaxConns, pc.MinConns)
	}
	if pc.MaxConnLifetime != time.Hour || pc.MaxConnIdleTime != 5*time.Minute {
		t.Errorf("lifetimes = %v/%v", pc.MaxConnLifetime, pc.MaxConnIdleTime)
	}

	cc := pc.ConnConfig
	if cc.Host != "db.internal" || cc.Port != 5433 {
		t.Errorf("addr = %s:%d", cc.Host, cc.Port)
	}
	if cc.User != "importer" || cc.Password != "s3cret" || cc.Database != "clientes" {
		t.Errorf("credentials = %s/%s/%s", cc.User, cc.Password, cc.Database)
	}
	if cc.TLSConfig != nil {
		t.Error("sslmode=disable should leave TLSConfig nil")
	}
}
