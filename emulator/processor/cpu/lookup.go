/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package cpu

type Op byte

const (
	OpUnknown Op = iota
	OpCLS
	OpRET
	OpJP
	OpCALL
	OpSEImm
	OpSNEImm
	OpSEReg
	OpLDImm
	OpADDImm
	OpLDReg
	OpOR
	OpAND
	OpXOR
	OpADD
	OpSUB
	OpSHR
	OpSUBN
	OpSHL
	OpSNEReg
	OpLDI
	OpJPV0
	OpRND
	OpDRW
	OpSKP
	OpSKNP
	OpLDVxDT
	OpLDVxK
	OpLDDTVx
	OpLDSTVx
	OpADDI
	OpLDF
	OpLDB
	OpLDIVx
	OpLDVxI

	numOps
)

var opNames = [numOps]string{
	OpUnknown: "???",
	OpCLS:     "CLS",
	OpRET:     "RET",
	OpJP:      "JP",
	OpCALL:    "CALL",
	OpSEImm:   "SE Vx, byte",
	OpSNEImm:  "SNE Vx, byte",
	OpSEReg:   "SE Vx, Vy",
	OpLDImm:   "LD Vx, byte",
	OpADDImm:  "ADD Vx, byte",
	OpLDReg:   "LD Vx, Vy",
	OpOR:      "OR",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpADD:     "ADD Vx, Vy",
	OpSUB:     "SUB",
	OpSHR:     "SHR",
	OpSUBN:    "SUBN",
	OpSHL:     "SHL",
	OpSNEReg:  "SNE Vx, Vy",
	OpLDI:     "LD I, addr",
	OpJPV0:    "JP V0, addr",
	OpRND:     "RND",
	OpDRW:     "DRW",
	OpSKP:     "SKP",
	OpSKNP:    "SKNP",
	OpLDVxDT:  "LD Vx, DT",
	OpLDVxK:   "LD Vx, K",
	OpLDDTVx:  "LD DT, Vx",
	OpLDSTVx:  "LD ST, Vx",
	OpADDI:    "ADD I, Vx",
	OpLDF:     "LD F, Vx",
	OpLDB:     "LD B, Vx",
	OpLDIVx:   "LD [I], Vx",
	OpLDVxI:   "LD Vx, [I]",
}

func (op Op) String() string {
	if op >= numOps {
		return opNames[OpUnknown]
	}
	return opNames[op]
}

// First stage, indexed by the leading nibble. Families 0x0, 0x8, 0xE and 0xF
// are resolved by the second stage tables.
var lookupMain = [0x10]Op{
	0x1: OpJP,
	0x2: OpCALL,
	0x3: OpSEImm,
	0x4: OpSNEImm,
	0x5: OpSEReg,
	0x6: OpLDImm,
	0x7: OpADDImm,
	0x9: OpSNEReg,
	0xA: OpLDI,
	0xB: OpJPV0,
	0xC: OpRND,
	0xD: OpDRW,
}

// Indexed by the trailing nibble.
var lookup0 = [0x10]Op{
	0x0: OpCLS,
	0xE: OpRET,
}

var lookup8 = [0x10]Op{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADD,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

var lookupE = [0x10]Op{
	0xE: OpSKP,
	0x1: OpSKNP,
}

// Indexed by the trailing byte.
var lookupF = [0x100]Op{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpLDB,
	0x55: OpLDIVx,
	0x65: OpLDVxI,
}

type pattern struct {
	mask, value uint16
}

// Full bit patterns each operation must match. The tables above only look
// at some of the bits, so 0x0123 or 0x5121 would otherwise slip through.
var patterns = [numOps]pattern{
	OpCLS:    {0xFFFF, 0x00E0},
	OpRET:    {0xFFFF, 0x00EE},
	OpJP:     {0xF000, 0x1000},
	OpCALL:   {0xF000, 0x2000},
	OpSEImm:  {0xF000, 0x3000},
	OpSNEImm: {0xF000, 0x4000},
	OpSEReg:  {0xF00F, 0x5000},
	OpLDImm:  {0xF000, 0x6000},
	OpADDImm: {0xF000, 0x7000},
	OpLDReg:  {0xF00F, 0x8000},
	OpOR:     {0xF00F, 0x8001},
	OpAND:    {0xF00F, 0x8002},
	OpXOR:    {0xF00F, 0x8003},
	OpADD:    {0xF00F, 0x8004},
	OpSUB:    {0xF00F, 0x8005},
	OpSHR:    {0xF00F, 0x8006},
	OpSUBN:   {0xF00F, 0x8007},
	OpSHL:    {0xF00F, 0x800E},
	OpSNEReg: {0xF00F, 0x9000},
	OpLDI:    {0xF000, 0xA000},
	OpJPV0:   {0xF000, 0xB000},
	OpRND:    {0xF000, 0xC000},
	OpDRW:    {0xF000, 0xD000},
	OpSKP:    {0xF0FF, 0xE09E},
	OpSKNP:   {0xF0FF, 0xE0A1},
	OpLDVxDT: {0xF0FF, 0xF007},
	OpLDVxK:  {0xF0FF, 0xF00A},
	OpLDDTVx: {0xF0FF, 0xF015},
	OpLDSTVx: {0xF0FF, 0xF018},
	OpADDI:   {0xF0FF, 0xF01E},
	OpLDF:    {0xF0FF, 0xF029},
	OpLDB:    {0xF0FF, 0xF033},
	OpLDIVx:  {0xF0FF, 0xF055},
	OpLDVxI:  {0xF0FF, 0xF065},
}
