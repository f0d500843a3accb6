package protocol

import (
	"fmt"

	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetTransform  uint = 10
	SyncIDNetVelocity   uint = 11
	SyncIDNetActor      uint = 12
	SyncIDNetProjectile uint = 13
	SyncIDNetEnemy      uint = 14
	SyncIDNetEffect     uint = 15
	SyncIDNetMatch      uint = 16
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetTransform uint8 = 10
	InterpIDNetVelocity  uint8 = 11
)

type registration struct {
	id   uint
	name string
	fn   func(id uint) error
}

func plain[T any](data T, ctype *donburi.ComponentType[T]) func(uint) error {
	return func(id uint) error {
		return esync.RegisterComponent(id, data, ctype)
	}
}

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	regs := []registration{
		{SyncIDNetTransform, "transform", func(id uint) error {
			return esync.RegisterComponent(id,
				netcomponents.NetTransformData{},
				netcomponents.NetTransform,
				esync.WithInterpFn(InterpIDNetTransform, netcomponents.LerpNetTransform),
			)
		}},
		{SyncIDNetVelocity, "velocity", func(id uint) error {
			return esync.RegisterComponent(id,
				netcomponents.NetVelocityData{},
				netcomponents.NetVelocity,
				esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
			)
		}},
		// Discrete state: no interpolation
		{SyncIDNetActor, "actor", plain(netcomponents.NetActorData{}, netcomponents.NetActor)},
		{SyncIDNetProjectile, "projectile", plain(netcomponents.NetProjectileData{}, netcomponents.NetProjectile)},
		{SyncIDNetEnemy, "enemy", plain(netcomponents.NetEnemyData{}, netcomponents.NetEnemy)},
		{SyncIDNetEffect, "effect", plain(netcomponents.NetEffectData{}, netcomponents.NetEffect)},
		{SyncIDNetMatch, "match", plain(netcomponents.NetMatchData{}, netcomponents.NetMatch)},
	}

	for _, r := range regs {
		if err := r.fn(r.id); err != nil {
			return fmt.Errorf("register %s component: %w", r.name, err)
		}
	}
	return nil
}
