package vm

import "github.com/srmvm/srm/pkg/regs"

// Registers holds the eight general-purpose registers plus the program
// counter and the implicit HI/LO pair written by DIV and read by
// CFHI/CFLO.
type Registers struct {
	GPR [regs.Count]int32
	PC  int32
	HI  int32
	LO  int32
}

// Convenience accessors named after their architectural roles, mirroring
// the GP/SP/FP/RA naming the teacher's own doc comment uses for its
// register roles.
func (r *Registers) GP() int32 { return r.GPR[regs.GP] }
func (r *Registers) SP() int32 { return r.GPR[regs.SP] }
func (r *Registers) FP() int32 { return r.GPR[regs.FP] }
func (r *Registers) RA() int32 { return r.GPR[regs.RA] }
