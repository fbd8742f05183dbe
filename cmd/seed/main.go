package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/hookvault/hookvault/capture/redis"
	"github.com/hookvault/hookvault/config"
	"github.com/hookvault/hookvault/endpoint"
	endpointredis "github.com/hookvault/hookvault/endpoint/redis"
	"github.com/hookvault/hookvault/manifest"
)

/* seed provisions endpoints from a YAML manifest, e.g.
 *
 * owners:
 *   - owner_id: "11111111-aaaa-bbbb-cccc-222222222222"
 *     endpoints: 2
 */

func main() {
	manifestPath := flag.String("manifest", "seed.yaml", "path to the seed manifest")
	flag.Parse()

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		fmt.Println(err)
		return
	}

	endpointRepo, err := endpointredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer endpointRepo.Close(ctx)

	captureRepo, err := redis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer captureRepo.Close(ctx)

	s := endpoint.NewService(endpointRepo, captureRepo)

	for _, owner := range m.Owners {
		for i := 0; i < owner.Endpoints; i++ {
			e, err := s.Create(ctx, owner.OwnerID)
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Printf("owner=%s endpoint=%s token=%s\n", e.OwnerID, e.ID, e.Token)
		}
	}
}
