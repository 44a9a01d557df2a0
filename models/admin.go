package models

import "github.com/ThomasMo54/teaching-shop-example/registry"

// Admin builds the entity registry driving the management API. Product uses
// the default descriptor (every field), Carrier lists its name and delivery
// delay.
func Admin() (*registry.Registry, error) {
	reg := registry.New()
	if err := reg.Register(&Product{}, nil); err != nil {
		return nil, err
	}
	if err := reg.Register(&Carrier{}, &registry.Descriptor{
		ListDisplay: []string{"name", "delay_days"},
	}); err != nil {
		return nil, err
	}
	return reg, nil
}
