package app

import (
	"github.com/vk/mechload/internal/registrar"
	"github.com/vk/mechload/mechanisms/bk"
	"github.com/vk/mechload/mechanisms/cadyn"
	"github.com/vk/mechload/mechanisms/cal12"
	"github.com/vk/mechload/mechanisms/cal13"
	"github.com/vk/mechload/mechanisms/caldyn"
	"github.com/vk/mechload/mechanisms/can"
	"github.com/vk/mechload/mechanisms/car"
	"github.com/vk/mechload/mechanisms/cav32"
	"github.com/vk/mechload/mechanisms/cav33"
	"github.com/vk/mechload/mechanisms/gaba"
	"github.com/vk/mechload/mechanisms/glutamate"
	"github.com/vk/mechload/mechanisms/im"
	"github.com/vk/mechload/mechanisms/kaf"
	"github.com/vk/mechload/mechanisms/kas"
	"github.com/vk/mechload/mechanisms/kdr"
	"github.com/vk/mechload/mechanisms/kir"
	"github.com/vk/mechload/mechanisms/naf"
	"github.com/vk/mechload/mechanisms/sk"
	"github.com/vk/mechload/mechanisms/vecevent"
)

// coreMechanisms is the definitive ordered list of all mechanisms compiled
// into the binary. The order here is both load order and banner order.
var coreMechanisms = []registrar.Descriptor{
	{Name: "Im.mod", Mechanism: &im.Module{}},
	{Name: "bk.mod", Mechanism: &bk.Module{}},
	{Name: "cadyn.mod", Mechanism: &cadyn.Module{}},
	{Name: "cal12.mod", Mechanism: &cal12.Module{}},
	{Name: "cal13.mod", Mechanism: &cal13.Module{}},
	{Name: "caldyn.mod", Mechanism: &caldyn.Module{}},
	{Name: "can.mod", Mechanism: &can.Module{}},
	{Name: "car.mod", Mechanism: &car.Module{}},
	{Name: "cav32.mod", Mechanism: &cav32.Module{}},
	{Name: "cav33.mod", Mechanism: &cav33.Module{}},
	{Name: "gaba.mod", Mechanism: &gaba.Module{}},
	{Name: "glutamate.mod", Mechanism: &glutamate.Module{}},
	{Name: "kaf.mod", Mechanism: &kaf.Module{}},
	{Name: "kas.mod", Mechanism: &kas.Module{}},
	{Name: "kdr.mod", Mechanism: &kdr.Module{}},
	{Name: "kir.mod", Mechanism: &kir.Module{}},
	{Name: "naf.mod", Mechanism: &naf.Module{}},
	{Name: "sk.mod", Mechanism: &sk.Module{}},
	{Name: "vecevent.mod", Mechanism: &vecevent.Module{}},
}

// CoreMechanisms returns a copy of the compiled-in descriptor list, in load
// order.
func CoreMechanisms() []registrar.Descriptor {
	out := make([]registrar.Descriptor, len(coreMechanisms))
	copy(out, coreMechanisms)
	return out
}
