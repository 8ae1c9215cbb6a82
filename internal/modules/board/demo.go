package board

import "github.com/charlespers/boardroom/internal/modules/bom"

// DemoParts is the sample bill of materials loaded on startup so the landing
// page has content before any upload. It mirrors a small mixed-signal board.
func DemoParts() []bom.PartRecord {
	return []bom.PartRecord{
		{ID: "U1", MPN: "STM32F103C8T6", Manufacturer: "STMicroelectronics", Category: "Microcontrollers", Package: "LQFP-48", Quantity: "1", UnitPrice: "$2.80"},
		{ID: "U2", MPN: "AMS1117-3.3", Manufacturer: "AMS", Category: "Power", Package: "SOT-223", Quantity: "1", UnitPrice: "$0.12"},
		{ID: "Y1", MPN: "ABM3-8.000MHZ", Manufacturer: "Abracon", Category: "Crystals", Package: "SMD-3225", Quantity: "1", UnitPrice: "$0.45"},
		{ID: "R1", MPN: "RC0603FR-0710KL", Manufacturer: "Yageo", Category: "Resistors", Package: "0603", Quantity: "4", UnitPrice: "$0.01"},
		{ID: "R5", MPN: "RC0603FR-071KL", Manufacturer: "Yageo", Category: "Resistors", Package: "0603", Quantity: "2", UnitPrice: "$0.01"},
		{ID: "C1", MPN: "CL10A105KB8NNNC", Manufacturer: "Samsung", Category: "Capacitors", Package: "0603", Quantity: "6", UnitPrice: "$0.02"},
		{ID: "C7", MPN: "CL10B104KB8NNNC", Manufacturer: "Samsung", Category: "Capacitors", Package: "0603", Quantity: "4", UnitPrice: "$0.01"},
		{ID: "D1", MPN: "SS14", Manufacturer: "Vishay", Category: "Diodes", Package: "SMA", Quantity: "1", UnitPrice: "$0.08"},
		{ID: "J1", MPN: "USB4085-GF-A", Manufacturer: "GCT", Category: "Connectors", Package: "USB-C", Quantity: "1", UnitPrice: "$0.95"},
		{ID: "SW1", MPN: "PTS636SL43", Manufacturer: "C&K", Package: "SMD-4", Quantity: "2", UnitPrice: "$0.10"},
	}
}
