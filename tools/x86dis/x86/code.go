// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Code identifies a single instruction
// form: its mnemonic, its encoding and the
// kinds of its operands.
//
// The zero Code is Invalid, which is used
// for bytes that do not decode to a valid
// instruction.
type Code uint16

const (
	Invalid Code = iota
	DeclareByte
	DeclareWord
	DeclareDword
	DeclareQword

	Add_rm8_r8
	Add_rm16_r16
	Add_rm32_r32
	Add_rm64_r64
	Add_r8_rm8
	Add_r16_rm16
	Add_r32_rm32
	Add_r64_rm64
	Add_AL_imm8
	Add_AX_imm16
	Add_EAX_imm32
	Add_RAX_imm32
	Or_rm8_r8
	Or_rm16_r16
	Or_rm32_r32
	Or_rm64_r64
	Or_r8_rm8
	Or_r16_rm16
	Or_r32_rm32
	Or_r64_rm64
	Or_AL_imm8
	Or_AX_imm16
	Or_EAX_imm32
	Or_RAX_imm32
	Adc_rm8_r8
	Adc_rm16_r16
	Adc_rm32_r32
	Adc_rm64_r64
	Adc_r8_rm8
	Adc_r16_rm16
	Adc_r32_rm32
	Adc_r64_rm64
	Adc_AL_imm8
	Adc_AX_imm16
	Adc_EAX_imm32
	Adc_RAX_imm32
	Sbb_rm8_r8
	Sbb_rm16_r16
	Sbb_rm32_r32
	Sbb_rm64_r64
	Sbb_r8_rm8
	Sbb_r16_rm16
	Sbb_r32_rm32
	Sbb_r64_rm64
	Sbb_AL_imm8
	Sbb_AX_imm16
	Sbb_EAX_imm32
	Sbb_RAX_imm32
	And_rm8_r8
	And_rm16_r16
	And_rm32_r32
	And_rm64_r64
	And_r8_rm8
	And_r16_rm16
	And_r32_rm32
	And_r64_rm64
	And_AL_imm8
	And_AX_imm16
	And_EAX_imm32
	And_RAX_imm32
	Sub_rm8_r8
	Sub_rm16_r16
	Sub_rm32_r32
	Sub_rm64_r64
	Sub_r8_rm8
	Sub_r16_rm16
	Sub_r32_rm32
	Sub_r64_rm64
	Sub_AL_imm8
	Sub_AX_imm16
	Sub_EAX_imm32
	Sub_RAX_imm32
	Xor_rm8_r8
	Xor_rm16_r16
	Xor_rm32_r32
	Xor_rm64_r64
	Xor_r8_rm8
	Xor_r16_rm16
	Xor_r32_rm32
	Xor_r64_rm64
	Xor_AL_imm8
	Xor_AX_imm16
	Xor_EAX_imm32
	Xor_RAX_imm32
	Cmp_rm8_r8
	Cmp_rm16_r16
	Cmp_rm32_r32
	Cmp_rm64_r64
	Cmp_r8_rm8
	Cmp_r16_rm16
	Cmp_r32_rm32
	Cmp_r64_rm64
	Cmp_AL_imm8
	Cmp_AX_imm16
	Cmp_EAX_imm32
	Cmp_RAX_imm32
	Add_rm8_imm8
	Add_rm16_imm16
	Add_rm32_imm32
	Add_rm64_imm32
	Add_rm8_imm8_82
	Add_rm16_imm8
	Add_rm32_imm8
	Add_rm64_imm8
	Or_rm8_imm8
	Or_rm16_imm16
	Or_rm32_imm32
	Or_rm64_imm32
	Or_rm8_imm8_82
	Or_rm16_imm8
	Or_rm32_imm8
	Or_rm64_imm8
	Adc_rm8_imm8
	Adc_rm16_imm16
	Adc_rm32_imm32
	Adc_rm64_imm32
	Adc_rm8_imm8_82
	Adc_rm16_imm8
	Adc_rm32_imm8
	Adc_rm64_imm8
	Sbb_rm8_imm8
	Sbb_rm16_imm16
	Sbb_rm32_imm32
	Sbb_rm64_imm32
	Sbb_rm8_imm8_82
	Sbb_rm16_imm8
	Sbb_rm32_imm8
	Sbb_rm64_imm8
	And_rm8_imm8
	And_rm16_imm16
	And_rm32_imm32
	And_rm64_imm32
	And_rm8_imm8_82
	And_rm16_imm8
	And_rm32_imm8
	And_rm64_imm8
	Sub_rm8_imm8
	Sub_rm16_imm16
	Sub_rm32_imm32
	Sub_rm64_imm32
	Sub_rm8_imm8_82
	Sub_rm16_imm8
	Sub_rm32_imm8
	Sub_rm64_imm8
	Xor_rm8_imm8
	Xor_rm16_imm16
	Xor_rm32_imm32
	Xor_rm64_imm32
	Xor_rm8_imm8_82
	Xor_rm16_imm8
	Xor_rm32_imm8
	Xor_rm64_imm8
	Cmp_rm8_imm8
	Cmp_rm16_imm16
	Cmp_rm32_imm32
	Cmp_rm64_imm32
	Cmp_rm8_imm8_82
	Cmp_rm16_imm8
	Cmp_rm32_imm8
	Cmp_rm64_imm8
	Pushw_ES
	Pushd_ES
	Popw_ES
	Popd_ES
	Pushw_CS
	Pushd_CS
	Pushw_SS
	Pushd_SS
	Popw_SS
	Popd_SS
	Pushw_DS
	Pushd_DS
	Popw_DS
	Popd_DS
	Daa
	Das
	Aaa
	Aas
	Inc_r16
	Inc_r32
	Dec_r16
	Dec_r32
	Push_r16
	Push_r32
	Push_r64
	Pop_r16
	Pop_r32
	Pop_r64
	Pushaw
	Pushad
	Popaw
	Popad
	Bound_r16_m1616
	Bound_r32_m3232
	Arpl_rm16_r16
	Movsxd_r16_rm16
	Movsxd_r32_rm32
	Movsxd_r64_rm32
	Push_imm16
	Pushd_imm32
	Pushq_imm32
	Imul_r16_rm16_imm16
	Imul_r32_rm32_imm32
	Imul_r64_rm64_imm32
	Pushw_imm8
	Pushd_imm8
	Pushq_imm8
	Imul_r16_rm16_imm8
	Imul_r32_rm32_imm8
	Imul_r64_rm64_imm8
	Insb_m8_DX
	Insw_m16_DX
	Insd_m32_DX
	Outsb_DX_m8
	Outsw_DX_m16
	Outsd_DX_m32
	Jo_rel8_16
	Jo_rel8_32
	Jo_rel8_64
	Jno_rel8_16
	Jno_rel8_32
	Jno_rel8_64
	Jb_rel8_16
	Jb_rel8_32
	Jb_rel8_64
	Jae_rel8_16
	Jae_rel8_32
	Jae_rel8_64
	Je_rel8_16
	Je_rel8_32
	Je_rel8_64
	Jne_rel8_16
	Jne_rel8_32
	Jne_rel8_64
	Jbe_rel8_16
	Jbe_rel8_32
	Jbe_rel8_64
	Ja_rel8_16
	Ja_rel8_32
	Ja_rel8_64
	Js_rel8_16
	Js_rel8_32
	Js_rel8_64
	Jns_rel8_16
	Jns_rel8_32
	Jns_rel8_64
	Jp_rel8_16
	Jp_rel8_32
	Jp_rel8_64
	Jnp_rel8_16
	Jnp_rel8_32
	Jnp_rel8_64
	Jl_rel8_16
	Jl_rel8_32
	Jl_rel8_64
	Jge_rel8_16
	Jge_rel8_32
	Jge_rel8_64
	Jle_rel8_16
	Jle_rel8_32
	Jle_rel8_64
	Jg_rel8_16
	Jg_rel8_32
	Jg_rel8_64
	Test_rm8_r8
	Test_rm16_r16
	Test_rm32_r32
	Test_rm64_r64
	Xchg_rm8_r8
	Xchg_rm16_r16
	Xchg_rm32_r32
	Xchg_rm64_r64
	Mov_rm8_r8
	Mov_rm16_r16
	Mov_rm32_r32
	Mov_rm64_r64
	Mov_r8_rm8
	Mov_r16_rm16
	Mov_r32_rm32
	Mov_r64_rm64
	Mov_rm16_Sreg
	Mov_r32m16_Sreg
	Mov_r64m16_Sreg
	Lea_r16_m
	Lea_r32_m
	Lea_r64_m
	Mov_Sreg_rm16
	Mov_Sreg_r32m16
	Mov_Sreg_r64m16
	Pop_rm16
	Pop_rm32
	Pop_rm64
	Nopw
	Nopd
	Nopq
	Pause
	Xchg_r16_AX
	Xchg_r32_EAX
	Xchg_r64_RAX
	Cbw
	Cwde
	Cdqe
	Cwd
	Cdq
	Cqo
	Call_ptr1616
	Call_ptr1632
	Wait
	Pushfw
	Pushfd
	Pushfq
	Popfw
	Popfd
	Popfq
	Sahf
	Lahf
	Mov_AL_moffs8
	Mov_AX_moffs16
	Mov_EAX_moffs32
	Mov_RAX_moffs64
	Mov_moffs8_AL
	Mov_moffs16_AX
	Mov_moffs32_EAX
	Mov_moffs64_RAX
	Movsb_m8_m8
	Movsw_m16_m16
	Movsd_m32_m32
	Movsq_m64_m64
	Cmpsb_m8_m8
	Cmpsw_m16_m16
	Cmpsd_m32_m32
	Cmpsq_m64_m64
	Test_AL_imm8
	Test_AX_imm16
	Test_EAX_imm32
	Test_RAX_imm32
	Stosb_m8_AL
	Stosw_m16_AX
	Stosd_m32_EAX
	Stosq_m64_RAX
	Lodsb_AL_m8
	Lodsw_AX_m16
	Lodsd_EAX_m32
	Lodsq_RAX_m64
	Scasb_AL_m8
	Scasw_AX_m16
	Scasd_EAX_m32
	Scasq_RAX_m64
	Mov_r8_imm8
	Mov_r16_imm16
	Mov_r32_imm32
	Mov_r64_imm64
	Rol_rm8_imm8
	Rol_rm16_imm8
	Rol_rm32_imm8
	Rol_rm64_imm8
	Rol_rm8_1
	Rol_rm16_1
	Rol_rm32_1
	Rol_rm64_1
	Rol_rm8_CL
	Rol_rm16_CL
	Rol_rm32_CL
	Rol_rm64_CL
	Ror_rm8_imm8
	Ror_rm16_imm8
	Ror_rm32_imm8
	Ror_rm64_imm8
	Ror_rm8_1
	Ror_rm16_1
	Ror_rm32_1
	Ror_rm64_1
	Ror_rm8_CL
	Ror_rm16_CL
	Ror_rm32_CL
	Ror_rm64_CL
	Rcl_rm8_imm8
	Rcl_rm16_imm8
	Rcl_rm32_imm8
	Rcl_rm64_imm8
	Rcl_rm8_1
	Rcl_rm16_1
	Rcl_rm32_1
	Rcl_rm64_1
	Rcl_rm8_CL
	Rcl_rm16_CL
	Rcl_rm32_CL
	Rcl_rm64_CL
	Rcr_rm8_imm8
	Rcr_rm16_imm8
	Rcr_rm32_imm8
	Rcr_rm64_imm8
	Rcr_rm8_1
	Rcr_rm16_1
	Rcr_rm32_1
	Rcr_rm64_1
	Rcr_rm8_CL
	Rcr_rm16_CL
	Rcr_rm32_CL
	Rcr_rm64_CL
	Shl_rm8_imm8
	Shl_rm16_imm8
	Shl_rm32_imm8
	Shl_rm64_imm8
	Shl_rm8_1
	Shl_rm16_1
	Shl_rm32_1
	Shl_rm64_1
	Shl_rm8_CL
	Shl_rm16_CL
	Shl_rm32_CL
	Shl_rm64_CL
	Shr_rm8_imm8
	Shr_rm16_imm8
	Shr_rm32_imm8
	Shr_rm64_imm8
	Shr_rm8_1
	Shr_rm16_1
	Shr_rm32_1
	Shr_rm64_1
	Shr_rm8_CL
	Shr_rm16_CL
	Shr_rm32_CL
	Shr_rm64_CL
	Sal_rm8_imm8
	Sal_rm16_imm8
	Sal_rm32_imm8
	Sal_rm64_imm8
	Sal_rm8_1
	Sal_rm16_1
	Sal_rm32_1
	Sal_rm64_1
	Sal_rm8_CL
	Sal_rm16_CL
	Sal_rm32_CL
	Sal_rm64_CL
	Sar_rm8_imm8
	Sar_rm16_imm8
	Sar_rm32_imm8
	Sar_rm64_imm8
	Sar_rm8_1
	Sar_rm16_1
	Sar_rm32_1
	Sar_rm64_1
	Sar_rm8_CL
	Sar_rm16_CL
	Sar_rm32_CL
	Sar_rm64_CL
	Retnw_imm16
	Retnd_imm16
	Retnq_imm16
	Retnw
	Retnd
	Retnq
	Les_r16_m1616
	Les_r32_m1632
	Lds_r16_m1616
	Lds_r32_m1632
	Mov_rm8_imm8
	Xabort_imm8
	Mov_rm16_imm16
	Mov_rm32_imm32
	Mov_rm64_imm32
	Xbegin_rel16
	Xbegin_rel32
	Enterw_imm16_imm8
	Enterd_imm16_imm8
	Enterq_imm16_imm8
	Leavew
	Leaved
	Leaveq
	Retfw_imm16
	Retfd_imm16
	Retfq_imm16
	Retfw
	Retfd
	Retfq
	Int3
	Int_imm8
	Into
	Iretw
	Iretd
	Iretq
	Aam_imm8
	Aad_imm8
	Salc
	Xlat_m8
	Loopne_rel8_16_CX
	Loopne_rel8_32_CX
	Loopne_rel8_16_ECX
	Loopne_rel8_32_ECX
	Loopne_rel8_64_ECX
	Loopne_rel8_16_RCX
	Loopne_rel8_64_RCX
	Loope_rel8_16_CX
	Loope_rel8_32_CX
	Loope_rel8_16_ECX
	Loope_rel8_32_ECX
	Loope_rel8_64_ECX
	Loope_rel8_16_RCX
	Loope_rel8_64_RCX
	Loop_rel8_16_CX
	Loop_rel8_32_CX
	Loop_rel8_16_ECX
	Loop_rel8_32_ECX
	Loop_rel8_64_ECX
	Loop_rel8_16_RCX
	Loop_rel8_64_RCX
	Jcxz_rel8_16
	Jcxz_rel8_32
	Jecxz_rel8_16
	Jecxz_rel8_32
	Jecxz_rel8_64
	Jrcxz_rel8_16
	Jrcxz_rel8_64
	In_AL_imm8
	In_AX_imm8
	In_EAX_imm8
	Out_imm8_AL
	Out_imm8_AX
	Out_imm8_EAX
	Call_rel16
	Call_rel32_32
	Call_rel32_64
	Jmp_rel16
	Jmp_rel32_32
	Jmp_rel32_64
	Jmp_ptr1616
	Jmp_ptr1632
	Jmp_rel8_16
	Jmp_rel8_32
	Jmp_rel8_64
	In_AL_DX
	In_AX_DX
	In_EAX_DX
	Out_DX_AL
	Out_DX_AX
	Out_DX_EAX
	Int1
	Hlt
	Cmc
	Test_rm8_imm8
	Test_rm16_imm16
	Test_rm32_imm32
	Test_rm64_imm32
	Not_rm8
	Not_rm16
	Not_rm32
	Not_rm64
	Neg_rm8
	Neg_rm16
	Neg_rm32
	Neg_rm64
	Mul_rm8
	Mul_rm16
	Mul_rm32
	Mul_rm64
	Imul_rm8
	Imul_rm16
	Imul_rm32
	Imul_rm64
	Div_rm8
	Div_rm16
	Div_rm32
	Div_rm64
	Idiv_rm8
	Idiv_rm16
	Idiv_rm32
	Idiv_rm64
	Clc
	Stc
	Cli
	Sti
	Cld
	Std
	Inc_rm8
	Inc_rm16
	Inc_rm32
	Inc_rm64
	Dec_rm8
	Dec_rm16
	Dec_rm32
	Dec_rm64
	Call_rm16
	Call_rm32
	Call_rm64
	Call_m1616
	Call_m1632
	Call_m1664
	Jmp_rm16
	Jmp_rm32
	Jmp_rm64
	Jmp_m1616
	Jmp_m1632
	Jmp_m1664
	Push_rm16
	Push_rm32
	Push_rm64

	Sldt_rm16
	Sldt_r32m16
	Sldt_r64m16
	Str_rm16
	Str_r32m16
	Str_r64m16
	Lldt_rm16
	Ltr_rm16
	Verr_rm16
	Verw_rm16
	Sgdt_m1632
	Sgdt_m1664
	Sidt_m1632
	Sidt_m1664
	Lgdt_m1632
	Lgdt_m1664
	Lidt_m1632
	Lidt_m1664
	Smsw_rm16
	Smsw_r32m16
	Smsw_r64m16
	Lmsw_rm16
	Invlpg_m
	Vmcall
	Vmlaunch
	Vmresume
	Vmxoff
	Monitor
	Mwait
	Clac
	Stac
	Encls
	Xgetbv
	Xsetbv
	Vmfunc
	Xend
	Xtest
	Enclu
	Serialize
	Rdpkru
	Wrpkru
	Rdtscp
	Monitorx
	Mwaitx
	Clzero
	Swapgs
	Lar_r16_rm16
	Lar_r32_rm32
	Lar_r64_rm64
	Lsl_r16_rm16
	Lsl_r32_rm32
	Lsl_r64_rm64
	Loadall286
	Syscall
	Clts
	Loadall386
	Sysretd
	Sysretq
	Invd
	Wbinvd
	Wbnoinvd
	Cl1invmb
	Ud2
	Prefetch_m8
	Prefetchw_m8
	Prefetchwt1_m8
	Femms
	Prefetchnta_m8
	Prefetcht0_m8
	Prefetcht1_m8
	Prefetcht2_m8
	Bndldx_bnd_mib
	Bndmov_bnd_bndm64
	Bndmov_bnd_bndm128
	Bndcl_bnd_rm32
	Bndcl_bnd_rm64
	Bndcu_bnd_rm32
	Bndcu_bnd_rm64
	Bndstx_mib_bnd
	Bndmov_bndm64_bnd
	Bndmov_bndm128_bnd
	Bndmk_bnd_m32
	Bndmk_bnd_m64
	Bndcn_bnd_rm32
	Bndcn_bnd_rm64
	Rdsspd_r32
	Rdsspq_r64
	Endbr64
	Endbr32
	Nop_rm16
	Nop_rm32
	Nop_rm64
	Reservednop_rm16_r16_0F0D
	Reservednop_rm32_r32_0F0D
	Reservednop_rm64_r64_0F0D
	Reservednop_rm16_r16_0F18
	Reservednop_rm32_r32_0F18
	Reservednop_rm64_r64_0F18
	Reservednop_rm16_r16_0F19
	Reservednop_rm32_r32_0F19
	Reservednop_rm64_r64_0F19
	Reservednop_rm16_r16_0F1A
	Reservednop_rm32_r32_0F1A
	Reservednop_rm64_r64_0F1A
	Reservednop_rm16_r16_0F1B
	Reservednop_rm32_r32_0F1B
	Reservednop_rm64_r64_0F1B
	Reservednop_rm16_r16_0F1C
	Reservednop_rm32_r32_0F1C
	Reservednop_rm64_r64_0F1C
	Reservednop_rm16_r16_0F1D
	Reservednop_rm32_r32_0F1D
	Reservednop_rm64_r64_0F1D
	Reservednop_rm16_r16_0F1E
	Reservednop_rm32_r32_0F1E
	Reservednop_rm64_r64_0F1E
	Reservednop_rm16_r16_0F1F
	Reservednop_rm32_r32_0F1F
	Reservednop_rm64_r64_0F1F
	Mov_r32_cr
	Mov_r64_cr
	Mov_r32_dr
	Mov_r64_dr
	Mov_cr_r32
	Mov_cr_r64
	Mov_dr_r32
	Mov_dr_r64
	Mov_r32_tr
	Mov_tr_r32
	Umov_rm8_r8
	Umov_rm16_r16
	Umov_rm32_r32
	Umov_r8_rm8
	Umov_r16_rm16
	Umov_r32_rm32
	Wrmsr
	Rdtsc
	Rdmsr
	Rdpmc
	Sysenter
	Getsec
	Sysexitd
	Sysexitq
	Cmovo_r16_rm16
	Cmovo_r32_rm32
	Cmovo_r64_rm64
	Cmovno_r16_rm16
	Cmovno_r32_rm32
	Cmovno_r64_rm64
	Cmovb_r16_rm16
	Cmovb_r32_rm32
	Cmovb_r64_rm64
	Cmovae_r16_rm16
	Cmovae_r32_rm32
	Cmovae_r64_rm64
	Cmove_r16_rm16
	Cmove_r32_rm32
	Cmove_r64_rm64
	Cmovne_r16_rm16
	Cmovne_r32_rm32
	Cmovne_r64_rm64
	Cmovbe_r16_rm16
	Cmovbe_r32_rm32
	Cmovbe_r64_rm64
	Cmova_r16_rm16
	Cmova_r32_rm32
	Cmova_r64_rm64
	Cmovs_r16_rm16
	Cmovs_r32_rm32
	Cmovs_r64_rm64
	Cmovns_r16_rm16
	Cmovns_r32_rm32
	Cmovns_r64_rm64
	Cmovp_r16_rm16
	Cmovp_r32_rm32
	Cmovp_r64_rm64
	Cmovnp_r16_rm16
	Cmovnp_r32_rm32
	Cmovnp_r64_rm64
	Cmovl_r16_rm16
	Cmovl_r32_rm32
	Cmovl_r64_rm64
	Cmovge_r16_rm16
	Cmovge_r32_rm32
	Cmovge_r64_rm64
	Cmovle_r16_rm16
	Cmovle_r32_rm32
	Cmovle_r64_rm64
	Cmovg_r16_rm16
	Cmovg_r32_rm32
	Cmovg_r64_rm64
	Jo_rel16
	Jo_rel32_32
	Jo_rel32_64
	Jno_rel16
	Jno_rel32_32
	Jno_rel32_64
	Jb_rel16
	Jb_rel32_32
	Jb_rel32_64
	Jae_rel16
	Jae_rel32_32
	Jae_rel32_64
	Je_rel16
	Je_rel32_32
	Je_rel32_64
	Jne_rel16
	Jne_rel32_32
	Jne_rel32_64
	Jbe_rel16
	Jbe_rel32_32
	Jbe_rel32_64
	Ja_rel16
	Ja_rel32_32
	Ja_rel32_64
	Js_rel16
	Js_rel32_32
	Js_rel32_64
	Jns_rel16
	Jns_rel32_32
	Jns_rel32_64
	Jp_rel16
	Jp_rel32_32
	Jp_rel32_64
	Jnp_rel16
	Jnp_rel32_32
	Jnp_rel32_64
	Jl_rel16
	Jl_rel32_32
	Jl_rel32_64
	Jge_rel16
	Jge_rel32_32
	Jge_rel32_64
	Jle_rel16
	Jle_rel32_32
	Jle_rel32_64
	Jg_rel16
	Jg_rel32_32
	Jg_rel32_64
	Seto_rm8
	Setno_rm8
	Setb_rm8
	Setae_rm8
	Sete_rm8
	Setne_rm8
	Setbe_rm8
	Seta_rm8
	Sets_rm8
	Setns_rm8
	Setp_rm8
	Setnp_rm8
	Setl_rm8
	Setge_rm8
	Setle_rm8
	Setg_rm8
	Pushw_FS
	Pushd_FS
	Pushq_FS
	Popw_FS
	Popd_FS
	Popq_FS
	Pushw_GS
	Pushd_GS
	Pushq_GS
	Popw_GS
	Popd_GS
	Popq_GS
	Cpuid
	Rsm
	Bt_rm16_r16
	Bt_rm32_r32
	Bt_rm64_r64
	Bts_rm16_r16
	Bts_rm32_r32
	Bts_rm64_r64
	Btr_rm16_r16
	Btr_rm32_r32
	Btr_rm64_r64
	Btc_rm16_r16
	Btc_rm32_r32
	Btc_rm64_r64
	Shld_rm16_r16_imm8
	Shld_rm32_r32_imm8
	Shld_rm64_r64_imm8
	Shld_rm16_r16_CL
	Shld_rm32_r32_CL
	Shld_rm64_r64_CL
	Shrd_rm16_r16_imm8
	Shrd_rm32_r32_imm8
	Shrd_rm64_r64_imm8
	Shrd_rm16_r16_CL
	Shrd_rm32_r32_CL
	Shrd_rm64_r64_CL
	Xbts_r16_rm16
	Xbts_r32_rm32
	Ibts_rm16_r16
	Ibts_rm32_r32
	Cmpxchg486_rm8_r8
	Cmpxchg486_rm16_r16
	Cmpxchg486_rm32_r32
	Imul_r16_rm16
	Imul_r32_rm32
	Imul_r64_rm64
	Cmpxchg_rm8_r8
	Cmpxchg_rm16_r16
	Cmpxchg_rm32_r32
	Cmpxchg_rm64_r64
	Lss_r16_m1616
	Lss_r32_m1632
	Lss_r64_m1664
	Lfs_r16_m1616
	Lfs_r32_m1632
	Lfs_r64_m1664
	Lgs_r16_m1616
	Lgs_r32_m1632
	Lgs_r64_m1664
	Movzx_r16_rm8
	Movzx_r32_rm8
	Movzx_r64_rm8
	Movzx_r16_rm16
	Movzx_r32_rm16
	Movzx_r64_rm16
	Movsx_r16_rm8
	Movsx_r32_rm8
	Movsx_r64_rm8
	Movsx_r16_rm16
	Movsx_r32_rm16
	Movsx_r64_rm16
	Popcnt_r16_rm16
	Popcnt_r32_rm32
	Popcnt_r64_rm64
	Jmpe_disp16
	Jmpe_disp32
	Ud1_r16_rm16
	Ud1_r32_rm32
	Ud1_r64_rm64
	Bt_rm16_imm8
	Bt_rm32_imm8
	Bt_rm64_imm8
	Bts_rm16_imm8
	Bts_rm32_imm8
	Bts_rm64_imm8
	Btr_rm16_imm8
	Btr_rm32_imm8
	Btr_rm64_imm8
	Btc_rm16_imm8
	Btc_rm32_imm8
	Btc_rm64_imm8
	Bsf_r16_rm16
	Bsf_r32_rm32
	Bsf_r64_rm64
	Tzcnt_r16_rm16
	Tzcnt_r32_rm32
	Tzcnt_r64_rm64
	Bsr_r16_rm16
	Bsr_r32_rm32
	Bsr_r64_rm64
	Lzcnt_r16_rm16
	Lzcnt_r32_rm32
	Lzcnt_r64_rm64
	Xadd_rm8_r8
	Xadd_rm16_r16
	Xadd_rm32_r32
	Xadd_rm64_r64
	Movnti_m32_r32
	Movnti_m64_r64
	Cmpxchg8b_m64
	Cmpxchg16b_m128
	Vmptrld_m64
	Vmclear_m64
	Vmxon_m64
	Vmptrst_m64
	Rdrand_r16
	Rdrand_r32
	Rdrand_r64
	Rdseed_r16
	Rdseed_r32
	Rdseed_r64
	Rdpid_r32
	Rdpid_r64
	Bswap_r16
	Bswap_r32
	Bswap_r64
	Ud0_r16_rm16
	Ud0_r32_rm32
	Ud0_r64_rm64
	Fxsave_m512byte
	Fxsave64_m512byte
	Fxrstor_m512byte
	Fxrstor64_m512byte
	Ldmxcsr_m32
	Stmxcsr_m32
	Xsave_mem
	Xsave64_mem
	Xrstor_mem
	Xrstor64_mem
	Xsaveopt_mem
	Clflush_m8
	Clwb_m8
	Clflushopt_m8
	Lfence
	Mfence
	Sfence
	Pcommit
	Rdfsbase_r32
	Rdfsbase_r64
	Rdgsbase_r32
	Rdgsbase_r64
	Wrfsbase_r32
	Wrfsbase_r64
	Wrgsbase_r32
	Wrgsbase_r64
	Incsspd_r32
	Incsspq_r64

	Movups_xmm_xmmm128
	Movupd_xmm_xmmm128
	Movss_xmm_xmmm32
	Movsd_xmm_xmmm64
	Movups_xmmm128_xmm
	Movupd_xmmm128_xmm
	Movss_xmmm32_xmm
	Movsd_xmmm64_xmm
	Movlps_xmm_m64
	Movhlps_xmm_xmm
	Movlpd_xmm_m64
	Movsldup_xmm_xmmm128
	Movddup_xmm_xmmm64
	Movlps_m64_xmm
	Movlpd_m64_xmm
	Unpcklps_xmm_xmmm128
	Unpcklpd_xmm_xmmm128
	Unpckhps_xmm_xmmm128
	Unpckhpd_xmm_xmmm128
	Movhps_xmm_m64
	Movlhps_xmm_xmm
	Movhpd_xmm_m64
	Movshdup_xmm_xmmm128
	Movhps_m64_xmm
	Movhpd_m64_xmm
	Movaps_xmm_xmmm128
	Movapd_xmm_xmmm128
	Movaps_xmmm128_xmm
	Movapd_xmmm128_xmm
	Cvtpi2ps_xmm_mmm64
	Cvtpi2pd_xmm_mmm64
	Cvtsi2ss_xmm_rm32
	Cvtsi2ss_xmm_rm64
	Cvtsi2sd_xmm_rm32
	Cvtsi2sd_xmm_rm64
	Movntps_m128_xmm
	Movntpd_m128_xmm
	Cvttps2pi_mm_xmmm64
	Cvttpd2pi_mm_xmmm128
	Cvttss2si_r32_xmmm32
	Cvttss2si_r64_xmmm32
	Cvttsd2si_r32_xmmm64
	Cvttsd2si_r64_xmmm64
	Cvtps2pi_mm_xmmm64
	Cvtpd2pi_mm_xmmm128
	Cvtss2si_r32_xmmm32
	Cvtss2si_r64_xmmm32
	Cvtsd2si_r32_xmmm64
	Cvtsd2si_r64_xmmm64
	Ucomiss_xmm_xmmm32
	Ucomisd_xmm_xmmm64
	Comiss_xmm_xmmm32
	Comisd_xmm_xmmm64
	Movmskps_r32_xmm
	Movmskps_r64_xmm
	Movmskpd_r32_xmm
	Movmskpd_r64_xmm
	Sqrtps_xmm_xmmm128
	Sqrtpd_xmm_xmmm128
	Sqrtss_xmm_xmmm32
	Sqrtsd_xmm_xmmm64
	Rsqrtps_xmm_xmmm128
	Rsqrtss_xmm_xmmm32
	Rcpps_xmm_xmmm128
	Rcpss_xmm_xmmm32
	Andps_xmm_xmmm128
	Andpd_xmm_xmmm128
	Andnps_xmm_xmmm128
	Andnpd_xmm_xmmm128
	Orps_xmm_xmmm128
	Orpd_xmm_xmmm128
	Xorps_xmm_xmmm128
	Xorpd_xmm_xmmm128
	Addps_xmm_xmmm128
	Addpd_xmm_xmmm128
	Addss_xmm_xmmm32
	Addsd_xmm_xmmm64
	Mulps_xmm_xmmm128
	Mulpd_xmm_xmmm128
	Mulss_xmm_xmmm32
	Mulsd_xmm_xmmm64
	Cvtps2pd_xmm_xmmm64
	Cvtpd2ps_xmm_xmmm128
	Cvtss2sd_xmm_xmmm32
	Cvtsd2ss_xmm_xmmm64
	Cvtdq2ps_xmm_xmmm128
	Cvtps2dq_xmm_xmmm128
	Cvttps2dq_xmm_xmmm128
	Subps_xmm_xmmm128
	Subpd_xmm_xmmm128
	Subss_xmm_xmmm32
	Subsd_xmm_xmmm64
	Minps_xmm_xmmm128
	Minpd_xmm_xmmm128
	Minss_xmm_xmmm32
	Minsd_xmm_xmmm64
	Divps_xmm_xmmm128
	Divpd_xmm_xmmm128
	Divss_xmm_xmmm32
	Divsd_xmm_xmmm64
	Maxps_xmm_xmmm128
	Maxpd_xmm_xmmm128
	Maxss_xmm_xmmm32
	Maxsd_xmm_xmmm64
	Cmpps_xmm_xmmm128_imm8
	Cmppd_xmm_xmmm128_imm8
	Cmpss_xmm_xmmm32_imm8
	Cmpsd_xmm_xmmm64_imm8
	Shufps_xmm_xmmm128_imm8
	Shufpd_xmm_xmmm128_imm8
	Haddpd_xmm_xmmm128
	Haddps_xmm_xmmm128
	Hsubpd_xmm_xmmm128
	Hsubps_xmm_xmmm128
	Addsubpd_xmm_xmmm128
	Addsubps_xmm_xmmm128
	Cvttpd2dq_xmm_xmmm128
	Cvtdq2pd_xmm_xmmm64
	Cvtpd2dq_xmm_xmmm128
	Lddqu_xmm_m128
	Punpcklbw_mm_mmm64
	Punpcklbw_xmm_xmmm128
	Punpcklwd_mm_mmm64
	Punpcklwd_xmm_xmmm128
	Punpckldq_mm_mmm64
	Punpckldq_xmm_xmmm128
	Packsswb_mm_mmm64
	Packsswb_xmm_xmmm128
	Pcmpgtb_mm_mmm64
	Pcmpgtb_xmm_xmmm128
	Pcmpgtw_mm_mmm64
	Pcmpgtw_xmm_xmmm128
	Pcmpgtd_mm_mmm64
	Pcmpgtd_xmm_xmmm128
	Packuswb_mm_mmm64
	Packuswb_xmm_xmmm128
	Punpckhbw_mm_mmm64
	Punpckhbw_xmm_xmmm128
	Punpckhwd_mm_mmm64
	Punpckhwd_xmm_xmmm128
	Punpckhdq_mm_mmm64
	Punpckhdq_xmm_xmmm128
	Packssdw_mm_mmm64
	Packssdw_xmm_xmmm128
	Pcmpeqb_mm_mmm64
	Pcmpeqb_xmm_xmmm128
	Pcmpeqw_mm_mmm64
	Pcmpeqw_xmm_xmmm128
	Pcmpeqd_mm_mmm64
	Pcmpeqd_xmm_xmmm128
	Psrlw_mm_mmm64
	Psrlw_xmm_xmmm128
	Psrld_mm_mmm64
	Psrld_xmm_xmmm128
	Psrlq_mm_mmm64
	Psrlq_xmm_xmmm128
	Paddq_mm_mmm64
	Paddq_xmm_xmmm128
	Pmullw_mm_mmm64
	Pmullw_xmm_xmmm128
	Psubusb_mm_mmm64
	Psubusb_xmm_xmmm128
	Psubusw_mm_mmm64
	Psubusw_xmm_xmmm128
	Pminub_mm_mmm64
	Pminub_xmm_xmmm128
	Pand_mm_mmm64
	Pand_xmm_xmmm128
	Paddusb_mm_mmm64
	Paddusb_xmm_xmmm128
	Paddusw_mm_mmm64
	Paddusw_xmm_xmmm128
	Pmaxub_mm_mmm64
	Pmaxub_xmm_xmmm128
	Pandn_mm_mmm64
	Pandn_xmm_xmmm128
	Pavgb_mm_mmm64
	Pavgb_xmm_xmmm128
	Psraw_mm_mmm64
	Psraw_xmm_xmmm128
	Psrad_mm_mmm64
	Psrad_xmm_xmmm128
	Pavgw_mm_mmm64
	Pavgw_xmm_xmmm128
	Pmulhuw_mm_mmm64
	Pmulhuw_xmm_xmmm128
	Pmulhw_mm_mmm64
	Pmulhw_xmm_xmmm128
	Psubsb_mm_mmm64
	Psubsb_xmm_xmmm128
	Psubsw_mm_mmm64
	Psubsw_xmm_xmmm128
	Pminsw_mm_mmm64
	Pminsw_xmm_xmmm128
	Por_mm_mmm64
	Por_xmm_xmmm128
	Paddsb_mm_mmm64
	Paddsb_xmm_xmmm128
	Paddsw_mm_mmm64
	Paddsw_xmm_xmmm128
	Pmaxsw_mm_mmm64
	Pmaxsw_xmm_xmmm128
	Pxor_mm_mmm64
	Pxor_xmm_xmmm128
	Psllw_mm_mmm64
	Psllw_xmm_xmmm128
	Pslld_mm_mmm64
	Pslld_xmm_xmmm128
	Psllq_mm_mmm64
	Psllq_xmm_xmmm128
	Pmuludq_mm_mmm64
	Pmuludq_xmm_xmmm128
	Pmaddwd_mm_mmm64
	Pmaddwd_xmm_xmmm128
	Psadbw_mm_mmm64
	Psadbw_xmm_xmmm128
	Psubb_mm_mmm64
	Psubb_xmm_xmmm128
	Psubw_mm_mmm64
	Psubw_xmm_xmmm128
	Psubd_mm_mmm64
	Psubd_xmm_xmmm128
	Psubq_mm_mmm64
	Psubq_xmm_xmmm128
	Paddb_mm_mmm64
	Paddb_xmm_xmmm128
	Paddw_mm_mmm64
	Paddw_xmm_xmmm128
	Paddd_mm_mmm64
	Paddd_xmm_xmmm128
	Punpcklqdq_xmm_xmmm128
	Punpckhqdq_xmm_xmmm128
	Movd_mm_rm32
	Movq_mm_rm64
	Movd_xmm_rm32
	Movq_xmm_rm64
	Movq_mm_mmm64
	Movdqa_xmm_xmmm128
	Movdqu_xmm_xmmm128
	Pshufw_mm_mmm64_imm8
	Pshufd_xmm_xmmm128_imm8
	Pshufhw_xmm_xmmm128_imm8
	Pshuflw_xmm_xmmm128_imm8
	Psrlw_mm_imm8
	Psrlw_xmm_imm8
	Psraw_mm_imm8
	Psraw_xmm_imm8
	Psllw_mm_imm8
	Psllw_xmm_imm8
	Psrld_mm_imm8
	Psrld_xmm_imm8
	Psrad_mm_imm8
	Psrad_xmm_imm8
	Pslld_mm_imm8
	Pslld_xmm_imm8
	Psrlq_mm_imm8
	Psrlq_xmm_imm8
	Psrldq_xmm_imm8
	Psllq_mm_imm8
	Psllq_xmm_imm8
	Pslldq_xmm_imm8
	Emms
	Vmread_rm32_r32
	Vmread_rm64_r64
	Extrq_xmm_imm8_imm8
	Insertq_xmm_xmm_imm8_imm8
	Vmwrite_r32_rm32
	Vmwrite_r64_rm64
	Extrq_xmm_xmm
	Insertq_xmm_xmm
	Movd_rm32_mm
	Movq_rm64_mm
	Movd_rm32_xmm
	Movq_rm64_xmm
	Movq_xmm_xmmm64
	Movq_mmm64_mm
	Movdqa_xmmm128_xmm
	Movdqu_xmmm128_xmm
	Pinsrw_mm_r32m16_imm8
	Pinsrw_xmm_r32m16_imm8
	Pextrw_r32_mm_imm8
	Pextrw_r32_xmm_imm8
	Movq_xmmm64_xmm
	Movq2dq_xmm_mm
	Movdq2q_mm_xmm
	Pmovmskb_r32_mm
	Pmovmskb_r32_xmm
	Movntq_m64_mm
	Movntdq_m128_xmm
	Maskmovq_rDI_mm_mm
	Maskmovdqu_rDI_xmm_xmm
	Pshufb_mm_mmm64
	Pshufb_xmm_xmmm128
	Phaddw_mm_mmm64
	Phaddw_xmm_xmmm128
	Phaddd_mm_mmm64
	Phaddd_xmm_xmmm128
	Pmaddubsw_mm_mmm64
	Pmaddubsw_xmm_xmmm128
	Pabsb_mm_mmm64
	Pabsb_xmm_xmmm128
	Pabsw_mm_mmm64
	Pabsw_xmm_xmmm128
	Pabsd_mm_mmm64
	Pabsd_xmm_xmmm128
	Pblendvb_xmm_xmmm128
	Ptest_xmm_xmmm128
	Pmovzxbw_xmm_xmmm64
	Pmulld_xmm_xmmm128
	Movbe_r16_m16
	Movbe_r32_m32
	Movbe_r64_m64
	Movbe_m16_r16
	Movbe_m32_r32
	Movbe_m64_r64
	Crc32_r32_rm8
	Crc32_r64_rm8
	Crc32_r32_rm16
	Crc32_r32_rm32
	Crc32_r64_rm64
	Adcx_r32_rm32
	Adcx_r64_rm64
	Adox_r32_rm32
	Adox_r64_rm64
	Palignr_mm_mmm64_imm8
	Palignr_xmm_xmmm128_imm8
	Roundps_xmm_xmmm128_imm8
	Roundsd_xmm_xmmm64_imm8
	Blendps_xmm_xmmm128_imm8
	Pextrd_rm32_xmm_imm8
	Pextrq_rm64_xmm_imm8
	Pinsrb_xmm_r32m8_imm8
	Pinsrd_xmm_rm32_imm8
	Pinsrq_xmm_rm64_imm8
	Pclmulqdq_xmm_xmmm128_imm8
	Pcmpistri_xmm_xmmm128_imm8
	Phaddsw_mm_mmm64
	Phaddsw_xmm_xmmm128
	Phsubw_mm_mmm64
	Phsubw_xmm_xmmm128
	Phsubd_mm_mmm64
	Phsubd_xmm_xmmm128
	Phsubsw_mm_mmm64
	Phsubsw_xmm_xmmm128
	Psignb_mm_mmm64
	Psignb_xmm_xmmm128
	Psignw_mm_mmm64
	Psignw_xmm_xmmm128
	Psignd_mm_mmm64
	Psignd_xmm_xmmm128
	Pmulhrsw_mm_mmm64
	Pmulhrsw_xmm_xmmm128
	Blendvps_xmm_xmmm128
	Blendvpd_xmm_xmmm128
	Pmovsxbw_xmm_xmmm64
	Pmovsxbd_xmm_xmmm32
	Pmovsxbq_xmm_xmmm16
	Pmovsxwd_xmm_xmmm64
	Pmovsxwq_xmm_xmmm32
	Pmovsxdq_xmm_xmmm64
	Pmovzxbd_xmm_xmmm32
	Pmovzxbq_xmm_xmmm16
	Pmovzxwd_xmm_xmmm64
	Pmovzxwq_xmm_xmmm32
	Pmovzxdq_xmm_xmmm64
	Pmuldq_xmm_xmmm128
	Pcmpeqq_xmm_xmmm128
	Packusdw_xmm_xmmm128
	Pcmpgtq_xmm_xmmm128
	Pminsb_xmm_xmmm128
	Pminsd_xmm_xmmm128
	Pminuw_xmm_xmmm128
	Pminud_xmm_xmmm128
	Pmaxsb_xmm_xmmm128
	Pmaxsd_xmm_xmmm128
	Pmaxuw_xmm_xmmm128
	Pmaxud_xmm_xmmm128
	Phminposuw_xmm_xmmm128
	Aesimc_xmm_xmmm128
	Aesenc_xmm_xmmm128
	Aesenclast_xmm_xmmm128
	Aesdec_xmm_xmmm128
	Aesdeclast_xmm_xmmm128
	Movntdqa_xmm_m128
	Invept_r32_m128
	Invept_r64_m128
	Invvpid_r32_m128
	Invvpid_r64_m128
	Invpcid_r32_m128
	Invpcid_r64_m128
	Roundpd_xmm_xmmm128_imm8
	Roundss_xmm_xmmm32_imm8
	Blendpd_xmm_xmmm128_imm8
	Pblendw_xmm_xmmm128_imm8
	Pextrb_r32m8_xmm_imm8
	Pextrb_r64m8_xmm_imm8
	Pextrw_r32m16_xmm_imm8
	Pextrw_r64m16_xmm_imm8
	Extractps_rm32_xmm_imm8
	Extractps_r64m32_xmm_imm8
	Insertps_xmm_xmmm32_imm8
	Dpps_xmm_xmmm128_imm8
	Dppd_xmm_xmmm128_imm8
	Mpsadbw_xmm_xmmm128_imm8
	Pcmpestrm_xmm_xmmm128_imm8
	Pcmpestri_xmm_xmmm128_imm8
	Pcmpistrm_xmm_xmmm128_imm8
	Aeskeygenassist_xmm_xmmm128_imm8

	Fadd_m32fp
	Fadd_st0_sti
	Fmul_m32fp
	Fmul_st0_sti
	Fcom_m32fp
	Fcom_st0_sti
	Fcomp_m32fp
	Fcomp_st0_sti
	Fsub_m32fp
	Fsub_st0_sti
	Fsubr_m32fp
	Fsubr_st0_sti
	Fdiv_m32fp
	Fdiv_st0_sti
	Fdivr_m32fp
	Fdivr_st0_sti
	Fld_m32fp
	Fst_m32fp
	Fstp_m32fp
	Fldenv_m14byte
	Fldenv_m28byte
	Fldcw_m2byte
	Fnstenv_m14byte
	Fnstenv_m28byte
	Fnstcw_m2byte
	Fld_sti
	Fxch_st0_sti
	Fnop
	Fchs
	Fabs
	Ftst
	Fxam
	Fld1
	Fldl2t
	Fldl2e
	Fldpi
	Fldlg2
	Fldln2
	Fldz
	F2xm1
	Fyl2x
	Fptan
	Fpatan
	Fxtract
	Fprem1
	Fdecstp
	Fincstp
	Fprem
	Fyl2xp1
	Fsqrt
	Fsincos
	Frndint
	Fscale
	Fsin
	Fcos
	Fiadd_m32int
	Fimul_m32int
	Ficom_m32int
	Ficomp_m32int
	Fisub_m32int
	Fisubr_m32int
	Fidiv_m32int
	Fidivr_m32int
	Fcmovb_st0_sti
	Fcmove_st0_sti
	Fcmovbe_st0_sti
	Fcmovu_st0_sti
	Fucompp
	Fild_m32int
	Fisttp_m32int
	Fist_m32int
	Fistp_m32int
	Fld_m80fp
	Fstp_m80fp
	Fcmovnb_st0_sti
	Fcmovne_st0_sti
	Fcmovnbe_st0_sti
	Fcmovnu_st0_sti
	Fneni
	Fndisi
	Fnclex
	Fninit
	Fnsetpm
	Frstpm
	Fucomi_st0_sti
	Fcomi_st0_sti
	Fadd_m64fp
	Fmul_m64fp
	Fcom_m64fp
	Fcomp_m64fp
	Fsub_m64fp
	Fsubr_m64fp
	Fdiv_m64fp
	Fdivr_m64fp
	Fadd_sti_st0
	Fmul_sti_st0
	Fsubr_sti_st0
	Fsub_sti_st0
	Fdivr_sti_st0
	Fdiv_sti_st0
	Fld_m64fp
	Fisttp_m64int
	Fst_m64fp
	Fstp_m64fp
	Frstor_m94byte
	Frstor_m108byte
	Fnsave_m94byte
	Fnsave_m108byte
	Fnstsw_m2byte
	Ffree_sti
	Fst_sti
	Fstp_sti
	Fucom_st0_sti
	Fucomp_st0_sti
	Fiadd_m16int
	Fimul_m16int
	Ficom_m16int
	Ficomp_m16int
	Fisub_m16int
	Fisubr_m16int
	Fidiv_m16int
	Fidivr_m16int
	Faddp_sti_st0
	Fmulp_sti_st0
	Fsubrp_sti_st0
	Fsubp_sti_st0
	Fdivrp_sti_st0
	Fdivp_sti_st0
	Fcompp
	Fild_m16int
	Fisttp_m16int
	Fist_m16int
	Fistp_m16int
	Fbld_m80bcd
	Fild_m64int
	Fbstp_m80bcd
	Fistp_m64int
	Ffreep_sti
	Fnstsw_AX
	Fucomip_st0_sti
	Fcomip_st0_sti

	VEX_Vaddps_xmm_xmm_xmmm128
	VEX_Vaddps_ymm_ymm_ymmm256
	VEX_Vaddpd_xmm_xmm_xmmm128
	VEX_Vaddpd_ymm_ymm_ymmm256
	VEX_Vaddss_xmm_xmm_xmmm32
	VEX_Vaddsd_xmm_xmm_xmmm64
	VEX_Vmulps_xmm_xmm_xmmm128
	VEX_Vmulps_ymm_ymm_ymmm256
	VEX_Vmulpd_xmm_xmm_xmmm128
	VEX_Vmulpd_ymm_ymm_ymmm256
	VEX_Vmulss_xmm_xmm_xmmm32
	VEX_Vmulsd_xmm_xmm_xmmm64
	VEX_Vsubps_xmm_xmm_xmmm128
	VEX_Vsubps_ymm_ymm_ymmm256
	VEX_Vsubpd_xmm_xmm_xmmm128
	VEX_Vsubpd_ymm_ymm_ymmm256
	VEX_Vsubss_xmm_xmm_xmmm32
	VEX_Vsubsd_xmm_xmm_xmmm64
	VEX_Vminps_xmm_xmm_xmmm128
	VEX_Vminps_ymm_ymm_ymmm256
	VEX_Vminpd_xmm_xmm_xmmm128
	VEX_Vminpd_ymm_ymm_ymmm256
	VEX_Vminss_xmm_xmm_xmmm32
	VEX_Vminsd_xmm_xmm_xmmm64
	VEX_Vdivps_xmm_xmm_xmmm128
	VEX_Vdivps_ymm_ymm_ymmm256
	VEX_Vdivpd_xmm_xmm_xmmm128
	VEX_Vdivpd_ymm_ymm_ymmm256
	VEX_Vdivss_xmm_xmm_xmmm32
	VEX_Vdivsd_xmm_xmm_xmmm64
	VEX_Vmaxps_xmm_xmm_xmmm128
	VEX_Vmaxps_ymm_ymm_ymmm256
	VEX_Vmaxpd_xmm_xmm_xmmm128
	VEX_Vmaxpd_ymm_ymm_ymmm256
	VEX_Vmaxss_xmm_xmm_xmmm32
	VEX_Vmaxsd_xmm_xmm_xmmm64
	VEX_Vandps_xmm_xmm_xmmm128
	VEX_Vandps_ymm_ymm_ymmm256
	VEX_Vandpd_xmm_xmm_xmmm128
	VEX_Vandpd_ymm_ymm_ymmm256
	VEX_Vandnps_xmm_xmm_xmmm128
	VEX_Vandnps_ymm_ymm_ymmm256
	VEX_Vandnpd_xmm_xmm_xmmm128
	VEX_Vandnpd_ymm_ymm_ymmm256
	VEX_Vorps_xmm_xmm_xmmm128
	VEX_Vorps_ymm_ymm_ymmm256
	VEX_Vorpd_xmm_xmm_xmmm128
	VEX_Vorpd_ymm_ymm_ymmm256
	VEX_Vxorps_xmm_xmm_xmmm128
	VEX_Vxorps_ymm_ymm_ymmm256
	VEX_Vxorpd_xmm_xmm_xmmm128
	VEX_Vxorpd_ymm_ymm_ymmm256
	VEX_Vsqrtps_xmm_xmmm128
	VEX_Vsqrtps_ymm_ymmm256
	VEX_Vsqrtpd_xmm_xmmm128
	VEX_Vsqrtpd_ymm_ymmm256
	VEX_Vmovups_xmm_xmmm128
	VEX_Vmovups_ymm_ymmm256
	VEX_Vmovups_xmmm128_xmm
	VEX_Vmovups_ymmm256_ymm
	VEX_Vmovupd_xmm_xmmm128
	VEX_Vmovupd_ymm_ymmm256
	VEX_Vmovupd_xmmm128_xmm
	VEX_Vmovupd_ymmm256_ymm
	VEX_Vmovaps_xmm_xmmm128
	VEX_Vmovaps_ymm_ymmm256
	VEX_Vmovaps_xmmm128_xmm
	VEX_Vmovaps_ymmm256_ymm
	VEX_Vmovapd_xmm_xmmm128
	VEX_Vmovapd_ymm_ymmm256
	VEX_Vmovapd_xmmm128_xmm
	VEX_Vmovapd_ymmm256_ymm
	VEX_Vmovdqa_xmm_xmmm128
	VEX_Vmovdqa_ymm_ymmm256
	VEX_Vmovdqa_xmmm128_xmm
	VEX_Vmovdqa_ymmm256_ymm
	VEX_Vmovdqu_xmm_xmmm128
	VEX_Vmovdqu_ymm_ymmm256
	VEX_Vmovdqu_xmmm128_xmm
	VEX_Vmovdqu_ymmm256_ymm
	VEX_Vmovss_xmm_xmm_xmm
	VEX_Vmovss_xmm_m32
	VEX_Vmovss_xmm_xmm_xmm_0F11
	VEX_Vmovss_m32_xmm
	VEX_Vmovsd_xmm_xmm_xmm
	VEX_Vmovsd_xmm_m64
	VEX_Vmovsd_xmm_xmm_xmm_0F11
	VEX_Vmovsd_m64_xmm
	VEX_Vcmpps_xmm_xmm_xmmm128_imm8
	VEX_Vcmpps_ymm_ymm_ymmm256_imm8
	VEX_Vcmppd_xmm_xmm_xmmm128_imm8
	VEX_Vcmppd_ymm_ymm_ymmm256_imm8
	VEX_Vcmpss_xmm_xmm_xmmm32_imm8
	VEX_Vcmpsd_xmm_xmm_xmmm64_imm8
	VEX_Vzeroupper
	VEX_Vzeroall
	VEX_Vldmxcsr_m32
	VEX_Vstmxcsr_m32
	VEX_Vpxor_xmm_xmm_xmmm128
	VEX_Vpxor_ymm_ymm_ymmm256
	VEX_Vpand_xmm_xmm_xmmm128
	VEX_Vpand_ymm_ymm_ymmm256
	VEX_Vpor_xmm_xmm_xmmm128
	VEX_Vpor_ymm_ymm_ymmm256
	VEX_Vpaddb_xmm_xmm_xmmm128
	VEX_Vpaddb_ymm_ymm_ymmm256
	VEX_Vpaddw_xmm_xmm_xmmm128
	VEX_Vpaddw_ymm_ymm_ymmm256
	VEX_Vpaddd_xmm_xmm_xmmm128
	VEX_Vpaddd_ymm_ymm_ymmm256
	VEX_Vpaddq_xmm_xmm_xmmm128
	VEX_Vpaddq_ymm_ymm_ymmm256
	VEX_Vpsubd_xmm_xmm_xmmm128
	VEX_Vpsubd_ymm_ymm_ymmm256
	VEX_Vpcmpeqb_xmm_xmm_xmmm128
	VEX_Vpcmpeqb_ymm_ymm_ymmm256
	VEX_Vpcmpeqd_xmm_xmm_xmmm128
	VEX_Vpcmpeqd_ymm_ymm_ymmm256
	VEX_Vpmulld_xmm_xmm_xmmm128
	VEX_Vpmulld_ymm_ymm_ymmm256
	VEX_Vpshufb_xmm_xmm_xmmm128
	VEX_Vpshufb_ymm_ymm_ymmm256
	VEX_Vptest_xmm_xmmm128
	VEX_Vptest_ymm_ymmm256
	VEX_Vblendvps_xmm_xmm_xmmm128_xmm
	VEX_Vblendvps_ymm_ymm_ymmm256_ymm
	VEX_Vblendvpd_xmm_xmm_xmmm128_xmm
	VEX_Vblendvpd_ymm_ymm_ymmm256_ymm
	VEX_Vpblendvb_xmm_xmm_xmmm128_xmm
	VEX_Vpblendvb_ymm_ymm_ymmm256_ymm
	VEX_Vbroadcastss_xmm_m32
	VEX_Vbroadcastss_ymm_m32
	VEX_Vbroadcastss_xmm_xmm
	VEX_Vbroadcastss_ymm_xmm
	VEX_Vbroadcastsd_ymm_m64
	VEX_Vbroadcastsd_ymm_xmm
	VEX_Vpbroadcastd_xmm_xmmm32
	VEX_Vpbroadcastd_ymm_xmmm32
	VEX_Vinsertf128_ymm_ymm_xmmm128_imm8
	VEX_Vextractf128_xmmm128_ymm_imm8
	VEX_Vperm2f128_ymm_ymm_ymmm256_imm8
	VEX_Vpermq_ymm_ymmm256_imm8
	VEX_Vpermd_ymm_ymm_ymmm256
	VEX_Vpgatherdd_xmm_vm32x_xmm
	VEX_Vpgatherdd_ymm_vm32y_ymm
	VEX_Vpgatherqq_xmm_vm64x_xmm
	VEX_Vpgatherqq_ymm_vm64y_ymm
	VEX_Vgatherdps_xmm_vm32x_xmm
	VEX_Vgatherdps_ymm_vm32y_ymm
	VEX_Vgatherqpd_xmm_vm64x_xmm
	VEX_Vgatherqpd_ymm_vm64y_ymm
	VEX_Vfmadd231ps_xmm_xmm_xmmm128
	VEX_Vfmadd231ps_ymm_ymm_ymmm256
	VEX_Vfmadd231pd_xmm_xmm_xmmm128
	VEX_Vfmadd231pd_ymm_ymm_ymmm256
	VEX_Vfmadd213ps_xmm_xmm_xmmm128
	VEX_Vfmadd213ps_ymm_ymm_ymmm256
	VEX_Vfmadd132ps_xmm_xmm_xmmm128
	VEX_Vfmadd132ps_ymm_ymm_ymmm256
	VEX_Vfmadd231ss_xmm_xmm_xmmm32
	VEX_Vfmadd231sd_xmm_xmm_xmmm64
	VEX_Vmovd_xmm_rm32
	VEX_Vmovq_xmm_rm64
	VEX_Vmovd_rm32_xmm
	VEX_Vmovq_rm64_xmm
	VEX_Vmovq_xmm_xmmm64
	VEX_Vcvtsi2ss_xmm_xmm_rm32
	VEX_Vcvtsi2ss_xmm_xmm_rm64
	VEX_Kmovw_kr_km16
	VEX_Kmovw_m16_kr
	VEX_Kmovb_kr_km8
	VEX_Kmovb_m8_kr
	VEX_Kmovd_kr_km32
	VEX_Kmovd_m32_kr
	VEX_Kmovq_kr_km64
	VEX_Kmovq_m64_kr
	VEX_Kmovw_kr_r32
	VEX_Kmovb_kr_r32
	VEX_Kmovd_kr_r32
	VEX_Kmovq_kr_r64
	VEX_Kmovw_r32_kr
	VEX_Kmovb_r32_kr
	VEX_Kmovd_r32_kr
	VEX_Kmovq_r64_kr
	VEX_Kandw_kr_kr_kr
	VEX_Kandnw_kr_kr_kr
	VEX_Korw_kr_kr_kr
	VEX_Kxnorw_kr_kr_kr
	VEX_Kxorw_kr_kr_kr
	VEX_Knotw_kr_kr
	VEX_Kortestw_kr_kr
	VEX_Andn_r32_r32_rm32
	VEX_Andn_r64_r64_rm64
	VEX_Bextr_r32_rm32_r32
	VEX_Bextr_r64_rm64_r64
	VEX_Shlx_r32_rm32_r32
	VEX_Shlx_r64_rm64_r64
	VEX_Sarx_r32_rm32_r32
	VEX_Sarx_r64_rm64_r64
	VEX_Shrx_r32_rm32_r32
	VEX_Shrx_r64_rm64_r64
	VEX_Blsr_r32_rm32
	VEX_Blsr_r64_rm64
	VEX_Blsmsk_r32_rm32
	VEX_Blsmsk_r64_rm64
	VEX_Blsi_r32_rm32
	VEX_Blsi_r64_rm64
	VEX_Bzhi_r32_rm32_r32
	VEX_Bzhi_r64_rm64_r64
	VEX_Pdep_r32_r32_rm32
	VEX_Pdep_r64_r64_rm64
	VEX_Pext_r32_r32_rm32
	VEX_Pext_r64_r64_rm64
	VEX_Mulx_r32_r32_rm32
	VEX_Mulx_r64_r64_rm64
	VEX_Rorx_r32_rm32_imm8
	VEX_Rorx_r64_rm64_imm8
	VEX_Vpermil2ps_xmm_xmm_xmmm128_xmm_imm4
	VEX_Vpermil2ps_xmm_xmm_xmm_xmmm128_imm4
	VEX_Vpermil2ps_ymm_ymm_ymmm256_ymm_imm4
	VEX_Vpermil2ps_ymm_ymm_ymm_ymmm256_imm4
	VEX_Vphaddsw_xmm_xmm_xmmm128
	VEX_Vphaddsw_ymm_ymm_ymmm256
	VEX_Vphsubw_xmm_xmm_xmmm128
	VEX_Vphsubw_ymm_ymm_ymmm256
	VEX_Vphsubd_xmm_xmm_xmmm128
	VEX_Vphsubd_ymm_ymm_ymmm256
	VEX_Vphsubsw_xmm_xmm_xmmm128
	VEX_Vphsubsw_ymm_ymm_ymmm256
	VEX_Vpsignb_xmm_xmm_xmmm128
	VEX_Vpsignb_ymm_ymm_ymmm256
	VEX_Vpsignw_xmm_xmm_xmmm128
	VEX_Vpsignw_ymm_ymm_ymmm256
	VEX_Vpsignd_xmm_xmm_xmmm128
	VEX_Vpsignd_ymm_ymm_ymmm256
	VEX_Vpmulhrsw_xmm_xmm_xmmm128
	VEX_Vpmulhrsw_ymm_ymm_ymmm256
	VEX_Vpmuldq_xmm_xmm_xmmm128
	VEX_Vpmuldq_ymm_ymm_ymmm256
	VEX_Vpcmpeqq_xmm_xmm_xmmm128
	VEX_Vpcmpeqq_ymm_ymm_ymmm256
	VEX_Vpackusdw_xmm_xmm_xmmm128
	VEX_Vpackusdw_ymm_ymm_ymmm256
	VEX_Vpcmpgtq_xmm_xmm_xmmm128
	VEX_Vpcmpgtq_ymm_ymm_ymmm256
	VEX_Vpminsb_xmm_xmm_xmmm128
	VEX_Vpminsb_ymm_ymm_ymmm256
	VEX_Vpminsd_xmm_xmm_xmmm128
	VEX_Vpminsd_ymm_ymm_ymmm256
	VEX_Vpminuw_xmm_xmm_xmmm128
	VEX_Vpminuw_ymm_ymm_ymmm256
	VEX_Vpminud_xmm_xmm_xmmm128
	VEX_Vpminud_ymm_ymm_ymmm256
	VEX_Vpmaxsb_xmm_xmm_xmmm128
	VEX_Vpmaxsb_ymm_ymm_ymmm256
	VEX_Vpmaxsd_xmm_xmm_xmmm128
	VEX_Vpmaxsd_ymm_ymm_ymmm256
	VEX_Vpmaxuw_xmm_xmm_xmmm128
	VEX_Vpmaxuw_ymm_ymm_ymmm256
	VEX_Vpmaxud_xmm_xmm_xmmm128
	VEX_Vpmaxud_ymm_ymm_ymmm256
	VEX_Vaesenc_xmm_xmm_xmmm128
	VEX_Vaesenc_ymm_ymm_ymmm256
	VEX_Vaesenclast_xmm_xmm_xmmm128
	VEX_Vaesenclast_ymm_ymm_ymmm256
	VEX_Vaesdec_xmm_xmm_xmmm128
	VEX_Vaesdec_ymm_ymm_ymmm256
	VEX_Vaesdeclast_xmm_xmm_xmmm128
	VEX_Vaesdeclast_ymm_ymm_ymmm256
	VEX_Vpblendw_xmm_xmm_xmmm128_imm8
	VEX_Vpblendw_ymm_ymm_ymmm256_imm8
	VEX_Vdpps_xmm_xmm_xmmm128_imm8
	VEX_Vdpps_ymm_ymm_ymmm256_imm8
	VEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8
	VEX_Vpclmulqdq_ymm_ymm_ymmm256_imm8
	VEX_Vpmovsxbw_xmm_xmmm64
	VEX_Vpmovsxbw_ymm_xmmm128
	VEX_Vpmovsxbd_xmm_xmmm32
	VEX_Vpmovsxbd_ymm_xmmm64
	VEX_Vpmovsxbq_xmm_xmmm16
	VEX_Vpmovsxbq_ymm_xmmm32
	VEX_Vpmovsxwd_xmm_xmmm64
	VEX_Vpmovsxwd_ymm_xmmm128
	VEX_Vpmovsxwq_xmm_xmmm32
	VEX_Vpmovsxwq_ymm_xmmm64
	VEX_Vpmovsxdq_xmm_xmmm64
	VEX_Vpmovsxdq_ymm_xmmm128
	VEX_Vpmovzxbw_xmm_xmmm64
	VEX_Vpmovzxbw_ymm_xmmm128
	VEX_Vpmovzxbd_xmm_xmmm32
	VEX_Vpmovzxbd_ymm_xmmm64
	VEX_Vpmovzxbq_xmm_xmmm16
	VEX_Vpmovzxbq_ymm_xmmm32
	VEX_Vpmovzxwd_xmm_xmmm64
	VEX_Vpmovzxwd_ymm_xmmm128
	VEX_Vpmovzxwq_xmm_xmmm32
	VEX_Vpmovzxwq_ymm_xmmm64
	VEX_Vpmovzxdq_xmm_xmmm64
	VEX_Vpmovzxdq_ymm_xmmm128
	VEX_Vaesimc_xmm_xmmm128
	VEX_Vaeskeygenassist_xmm_xmmm128_imm8
	VEX_Vinsertps_xmm_xmm_xmmm32_imm8
	VEX_Vextractps_rm32_xmm_imm8

	EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vaddpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vaddpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vaddss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vaddsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vmulps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vmulps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vmulps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vmulpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vmulpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vmulpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vmulss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vmulsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vsubps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vsubps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vsubps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vsubpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vsubpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vsubpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vsubss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vsubsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vdivps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vdivps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vdivps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vdivpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vdivpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vdivpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vdivss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vdivsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vminps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vminps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vminps_zmm_k1z_zmm_zmmm512b32_sae
	EVEX_Vminpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vminpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vminpd_zmm_k1z_zmm_zmmm512b64_sae
	EVEX_Vminss_xmm_k1z_xmm_xmmm32_sae
	EVEX_Vminsd_xmm_k1z_xmm_xmmm64_sae
	EVEX_Vmaxps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vmaxps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae
	EVEX_Vmaxpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vmaxpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vmaxpd_zmm_k1z_zmm_zmmm512b64_sae
	EVEX_Vmaxss_xmm_k1z_xmm_xmmm32_sae
	EVEX_Vmaxsd_xmm_k1z_xmm_xmmm64_sae
	EVEX_Vsqrtps_xmm_k1z_xmmm128b32
	EVEX_Vsqrtps_ymm_k1z_ymmm256b32
	EVEX_Vsqrtps_zmm_k1z_zmmm512b32_er
	EVEX_Vsqrtpd_xmm_k1z_xmmm128b64
	EVEX_Vsqrtpd_ymm_k1z_ymmm256b64
	EVEX_Vsqrtpd_zmm_k1z_zmmm512b64_er
	EVEX_Vmovups_xmm_k1z_xmmm128
	EVEX_Vmovups_ymm_k1z_ymmm256
	EVEX_Vmovups_zmm_k1z_zmmm512
	EVEX_Vmovups_xmmm128_k1_xmm
	EVEX_Vmovups_ymmm256_k1_ymm
	EVEX_Vmovups_zmmm512_k1_zmm
	EVEX_Vmovupd_xmm_k1z_xmmm128
	EVEX_Vmovupd_ymm_k1z_ymmm256
	EVEX_Vmovupd_zmm_k1z_zmmm512
	EVEX_Vmovupd_xmmm128_k1_xmm
	EVEX_Vmovupd_ymmm256_k1_ymm
	EVEX_Vmovupd_zmmm512_k1_zmm
	EVEX_Vmovaps_xmm_k1z_xmmm128
	EVEX_Vmovaps_ymm_k1z_ymmm256
	EVEX_Vmovaps_zmm_k1z_zmmm512
	EVEX_Vmovaps_xmmm128_k1_xmm
	EVEX_Vmovaps_ymmm256_k1_ymm
	EVEX_Vmovaps_zmmm512_k1_zmm
	EVEX_Vmovapd_xmm_k1z_xmmm128
	EVEX_Vmovapd_ymm_k1z_ymmm256
	EVEX_Vmovapd_zmm_k1z_zmmm512
	EVEX_Vmovapd_xmmm128_k1_xmm
	EVEX_Vmovapd_ymmm256_k1_ymm
	EVEX_Vmovapd_zmmm512_k1_zmm
	EVEX_Vmovdqa32_xmm_k1z_xmmm128
	EVEX_Vmovdqa32_ymm_k1z_ymmm256
	EVEX_Vmovdqa32_zmm_k1z_zmmm512
	EVEX_Vmovdqa32_zmmm512_k1_zmm
	EVEX_Vmovdqa64_xmm_k1z_xmmm128
	EVEX_Vmovdqa64_ymm_k1z_ymmm256
	EVEX_Vmovdqa64_zmm_k1z_zmmm512
	EVEX_Vmovdqa64_zmmm512_k1_zmm
	EVEX_Vmovdqu32_xmm_k1z_xmmm128
	EVEX_Vmovdqu32_ymm_k1z_ymmm256
	EVEX_Vmovdqu32_zmm_k1z_zmmm512
	EVEX_Vmovdqu32_zmmm512_k1_zmm
	EVEX_Vmovdqu64_xmm_k1z_xmmm128
	EVEX_Vmovdqu64_ymm_k1z_ymmm256
	EVEX_Vmovdqu64_zmm_k1z_zmmm512
	EVEX_Vmovdqu64_zmmm512_k1_zmm
	EVEX_Vmovdqu8_zmm_k1z_zmmm512
	EVEX_Vmovdqu16_zmm_k1z_zmmm512
	EVEX_Vpxord_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpxord_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpxord_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpxorq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpxorq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpxorq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpandd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpandd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpandq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpandq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpord_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpord_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpord_zmm_k1z_zmm_zmmm512b32
	EVEX_Vporq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vporq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vporq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpaddd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpaddq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpaddq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpsubd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpsubd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpsubd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpmulld_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpmulld_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpmulld_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpaddb_xmm_k1z_xmm_xmmm128
	EVEX_Vpaddb_ymm_k1z_ymm_ymmm256
	EVEX_Vpaddb_zmm_k1z_zmm_zmmm512
	EVEX_Vcvtne2ps2bf16_xmm_k1z_xmm_xmmm128b32
	EVEX_Vcvtne2ps2bf16_ymm_k1z_ymm_ymmm256b32
	EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32
	EVEX_Vdpbf16ps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vdpbf16ps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32
	EVEX_Vcvtneps2bf16_xmm_k1z_xmmm128b32
	EVEX_Vcvtneps2bf16_xmm_k1z_ymmm256b32
	EVEX_Vcvtneps2bf16_ymm_k1z_zmmm512b32
	EVEX_Vfmadd231ps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vfmadd231ps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vfmadd231ps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vfmadd231pd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vfmadd231pd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vfmadd231pd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vaddph_xmm_k1z_xmm_xmmm128b16
	EVEX_Vaddph_ymm_k1z_ymm_ymmm256b16
	EVEX_Vaddph_zmm_k1z_zmm_zmmm512b16_er
	EVEX_Vpternlogd_xmm_k1z_xmm_xmmm128b32_imm8
	EVEX_Vpternlogd_ymm_k1z_ymm_ymmm256b32_imm8
	EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	EVEX_Vpternlogq_xmm_k1z_xmm_xmmm128b64_imm8
	EVEX_Vpternlogq_ymm_k1z_ymm_ymmm256b64_imm8
	EVEX_Vpternlogq_zmm_k1z_zmm_zmmm512b64_imm8
	EVEX_Vcmpps_kr_k1_xmm_xmmm128b32_imm8
	EVEX_Vcmpps_kr_k1_ymm_ymmm256b32_imm8
	EVEX_Vcmpps_kr_k1_zmm_zmmm512b32_imm8_sae
	EVEX_Vcmppd_kr_k1_xmm_xmmm128b64_imm8
	EVEX_Vcmppd_kr_k1_ymm_ymmm256b64_imm8
	EVEX_Vcmppd_kr_k1_zmm_zmmm512b64_imm8_sae
	EVEX_Vpcmpd_kr_k1_xmm_xmmm128b32_imm8
	EVEX_Vpcmpd_kr_k1_ymm_ymmm256b32_imm8
	EVEX_Vpcmpd_kr_k1_zmm_zmmm512b32_imm8
	EVEX_Vpcmpud_kr_k1_xmm_xmmm128b32_imm8
	EVEX_Vpcmpud_kr_k1_ymm_ymmm256b32_imm8
	EVEX_Vpcmpud_kr_k1_zmm_zmmm512b32_imm8
	EVEX_Vpcmpq_kr_k1_xmm_xmmm128b64_imm8
	EVEX_Vpcmpq_kr_k1_ymm_ymmm256b64_imm8
	EVEX_Vpcmpq_kr_k1_zmm_zmmm512b64_imm8
	EVEX_Vpcmpuq_kr_k1_xmm_xmmm128b64_imm8
	EVEX_Vpcmpuq_kr_k1_ymm_ymmm256b64_imm8
	EVEX_Vpcmpuq_kr_k1_zmm_zmmm512b64_imm8
	EVEX_Vcmpss_kr_k1_xmm_xmmm32_imm8_sae
	EVEX_Vcmpsd_kr_k1_xmm_xmmm64_imm8_sae
	EVEX_Vpbroadcastd_xmm_k1z_xmmm32
	EVEX_Vpbroadcastd_xmm_k1z_r32
	EVEX_Vbroadcastss_xmm_k1z_xmmm32
	EVEX_Vpbroadcastd_ymm_k1z_xmmm32
	EVEX_Vpbroadcastd_ymm_k1z_r32
	EVEX_Vbroadcastss_ymm_k1z_xmmm32
	EVEX_Vpbroadcastd_zmm_k1z_xmmm32
	EVEX_Vpbroadcastd_zmm_k1z_r32
	EVEX_Vbroadcastss_zmm_k1z_xmmm32
	EVEX_Vpgatherdd_xmm_k1_vm32x
	EVEX_Vgatherdps_xmm_k1_vm32x
	EVEX_Vpscatterdd_vm32x_k1_xmm
	EVEX_Vpgatherdd_ymm_k1_vm32y
	EVEX_Vgatherdps_ymm_k1_vm32y
	EVEX_Vpscatterdd_vm32y_k1_ymm
	EVEX_Vpgatherdd_zmm_k1_vm32z
	EVEX_Vgatherdps_zmm_k1_vm32z
	EVEX_Vpscatterdd_vm32z_k1_zmm
	EVEX_Vpminsd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpminsd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpminsd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpminsq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpminsq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpminsq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpmaxsd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpmaxsd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpmaxsd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpmaxsq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpmaxsq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpmaxsq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpminud_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpminud_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpminud_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpminuq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpminuq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpminuq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpmaxud_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpmaxud_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpmaxud_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpmaxuq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpmaxuq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpmaxuq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpandnd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpandnd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpandnd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpandnq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpandnq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpandnq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpsubq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpsubq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpsubq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpmullq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpmullq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpmullq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpmuldq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpmuldq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpmuldq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpackusdw_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpackusdw_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpackusdw_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpminsb_xmm_k1z_xmm_xmmm128
	EVEX_Vpminsb_ymm_k1z_ymm_ymmm256
	EVEX_Vpminsb_zmm_k1z_zmm_zmmm512
	EVEX_Vpmaxsb_xmm_k1z_xmm_xmmm128
	EVEX_Vpmaxsb_ymm_k1z_ymm_ymmm256
	EVEX_Vpmaxsb_zmm_k1z_zmm_zmmm512
	EVEX_Vpminuw_xmm_k1z_xmm_xmmm128
	EVEX_Vpminuw_ymm_k1z_ymm_ymmm256
	EVEX_Vpminuw_zmm_k1z_zmm_zmmm512
	EVEX_Vpmaxuw_xmm_k1z_xmm_xmmm128
	EVEX_Vpmaxuw_ymm_k1z_ymm_ymmm256
	EVEX_Vpmaxuw_zmm_k1z_zmm_zmmm512
	EVEX_Vpmulhrsw_xmm_k1z_xmm_xmmm128
	EVEX_Vpmulhrsw_ymm_k1z_ymm_ymmm256
	EVEX_Vpmulhrsw_zmm_k1z_zmm_zmmm512
	EVEX_Vpshufb_xmm_k1z_xmm_xmmm128
	EVEX_Vpshufb_ymm_k1z_ymm_ymmm256
	EVEX_Vpshufb_zmm_k1z_zmm_zmmm512
	EVEX_Vpaddw_xmm_k1z_xmm_xmmm128
	EVEX_Vpaddw_ymm_k1z_ymm_ymmm256
	EVEX_Vpaddw_zmm_k1z_zmm_zmmm512
	EVEX_Vpsubb_xmm_k1z_xmm_xmmm128
	EVEX_Vpsubb_ymm_k1z_ymm_ymmm256
	EVEX_Vpsubb_zmm_k1z_zmm_zmmm512
	EVEX_Vpsubw_xmm_k1z_xmm_xmmm128
	EVEX_Vpsubw_ymm_k1z_ymm_ymmm256
	EVEX_Vpsubw_zmm_k1z_zmm_zmmm512
	EVEX_Vpermd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpermd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpermq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpermq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vaesenc_xmm_xmm_xmmm128
	EVEX_Vaesenc_ymm_ymm_ymmm256
	EVEX_Vaesenc_zmm_zmm_zmmm512
	EVEX_Vaesenclast_xmm_xmm_xmmm128
	EVEX_Vaesenclast_ymm_ymm_ymmm256
	EVEX_Vaesenclast_zmm_zmm_zmmm512
	EVEX_Vaesdec_xmm_xmm_xmmm128
	EVEX_Vaesdec_ymm_ymm_ymmm256
	EVEX_Vaesdec_zmm_zmm_zmmm512
	EVEX_Vaesdeclast_xmm_xmm_xmmm128
	EVEX_Vaesdeclast_ymm_ymm_ymmm256
	EVEX_Vaesdeclast_zmm_zmm_zmmm512
	EVEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8
	EVEX_Vpclmulqdq_ymm_ymm_ymmm256_imm8
	EVEX_Vpclmulqdq_zmm_zmm_zmmm512_imm8
	EVEX_Vpcmpeqq_kr_k1_xmm_xmmm128b64
	EVEX_Vpcmpeqq_kr_k1_ymm_ymmm256b64
	EVEX_Vpcmpeqq_kr_k1_zmm_zmmm512b64
	EVEX_Vpcmpgtq_kr_k1_xmm_xmmm128b64
	EVEX_Vpcmpgtq_kr_k1_ymm_ymmm256b64
	EVEX_Vpcmpgtq_kr_k1_zmm_zmmm512b64
	EVEX_Vpmovsxbw_xmm_k1z_xmmm64
	EVEX_Vpmovsxbw_ymm_k1z_xmmm128
	EVEX_Vpmovsxbw_zmm_k1z_ymmm256
	EVEX_Vpmovzxbw_xmm_k1z_xmmm64
	EVEX_Vpmovzxbw_ymm_k1z_xmmm128
	EVEX_Vpmovzxbw_zmm_k1z_ymmm256
	EVEX_Vpmovsxdq_xmm_k1z_xmmm64
	EVEX_Vpmovsxdq_ymm_k1z_xmmm128
	EVEX_Vpmovsxdq_zmm_k1z_ymmm256
	EVEX_Vpmovzxdq_xmm_k1z_xmmm64
	EVEX_Vpmovzxdq_ymm_k1z_xmmm128
	EVEX_Vpmovzxdq_zmm_k1z_ymmm256
	EVEX_Vmovdqa32_xmmm128_k1_xmm
	EVEX_Vmovdqa32_ymmm256_k1_ymm
	EVEX_Vmovdqa64_xmmm128_k1_xmm
	EVEX_Vmovdqa64_ymmm256_k1_ymm
	EVEX_Vmovdqu32_xmmm128_k1_xmm
	EVEX_Vmovdqu32_ymmm256_k1_ymm
	EVEX_Vmovdqu64_xmmm128_k1_xmm
	EVEX_Vmovdqu64_ymmm256_k1_ymm
	EVEX_Vmovdqu8_xmm_k1z_xmmm128
	EVEX_Vmovdqu8_ymm_k1z_ymmm256
	EVEX_Vmovdqu8_xmmm128_k1_xmm
	EVEX_Vmovdqu8_ymmm256_k1_ymm
	EVEX_Vmovdqu8_zmmm512_k1_zmm
	EVEX_Vmovdqu16_xmm_k1z_xmmm128
	EVEX_Vmovdqu16_ymm_k1z_ymmm256
	EVEX_Vmovdqu16_xmmm128_k1_xmm
	EVEX_Vmovdqu16_ymmm256_k1_ymm
	EVEX_Vmovdqu16_zmmm512_k1_zmm
	EVEX_Vpbroadcastq_xmm_k1z_xmmm64
	EVEX_Vpbroadcastq_ymm_k1z_xmmm64
	EVEX_Vpbroadcastq_zmm_k1z_xmmm64
	EVEX_Vbroadcastsd_ymm_k1z_xmmm64
	EVEX_Vbroadcastsd_zmm_k1z_xmmm64
	EVEX_Vcvtdq2ps_xmm_k1z_xmmm128b32
	EVEX_Vcvtdq2ps_ymm_k1z_ymmm256b32
	EVEX_Vcvtdq2ps_zmm_k1z_zmmm512b32_er
	EVEX_Vcvtps2dq_xmm_k1z_xmmm128b32
	EVEX_Vcvtps2dq_ymm_k1z_ymmm256b32
	EVEX_Vcvtps2dq_zmm_k1z_zmmm512b32_er
	EVEX_Vcvttps2dq_xmm_k1z_xmmm128b32
	EVEX_Vcvttps2dq_ymm_k1z_ymmm256b32
	EVEX_Vcvttps2dq_zmm_k1z_zmmm512b32_sae
	EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8
	EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8
	EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8

	XOP_Vpcmov_xmm_xmm_xmmm128_xmm
	XOP_Vpcmov_xmm_xmm_xmm_xmmm128
	XOP_Vpcmov_ymm_ymm_ymmm256_ymm
	XOP_Vpcmov_ymm_ymm_ymm_ymmm256
	XOP_Vprotb_xmm_xmmm128_xmm
	XOP_Vprotb_xmm_xmm_xmmm128
	XOP_Vprotb_xmm_xmmm128_imm8
	XOP_Vprotw_xmm_xmmm128_xmm
	XOP_Vprotw_xmm_xmm_xmmm128
	XOP_Vprotw_xmm_xmmm128_imm8
	XOP_Vprotd_xmm_xmmm128_xmm
	XOP_Vprotd_xmm_xmm_xmmm128
	XOP_Vprotd_xmm_xmmm128_imm8
	XOP_Vprotq_xmm_xmmm128_xmm
	XOP_Vprotq_xmm_xmm_xmmm128
	XOP_Vprotq_xmm_xmmm128_imm8
	XOP_Vpcomb_xmm_xmm_xmmm128_imm8
	XOP_Vpcomw_xmm_xmm_xmmm128_imm8
	XOP_Vpcomd_xmm_xmm_xmmm128_imm8
	XOP_Vpcomq_xmm_xmm_xmmm128_imm8
	XOP_Vpcomub_xmm_xmm_xmmm128_imm8
	XOP_Vpcomuw_xmm_xmm_xmmm128_imm8
	XOP_Vpcomud_xmm_xmm_xmmm128_imm8
	XOP_Vpcomuq_xmm_xmm_xmmm128_imm8
	XOP_Vfrczps_xmm_xmmm128
	XOP_Vfrczps_ymm_ymmm256
	XOP_Vfrczpd_xmm_xmmm128
	XOP_Vfrczpd_ymm_ymmm256
	XOP_Vfrczss_xmm_xmmm32
	XOP_Vfrczsd_xmm_xmmm64
	XOP_Vpmacssww_xmm_xmm_xmmm128_xmm
	XOP_Vpmacsswd_xmm_xmm_xmmm128_xmm
	XOP_Vpmacssdd_xmm_xmm_xmmm128_xmm
	XOP_Vphaddbw_xmm_xmmm128
	XOP_Blcfill_r32_rm32
	XOP_Blcfill_r64_rm64
	XOP_Blsfill_r32_rm32
	XOP_Blsfill_r64_rm64
	XOP_Blcs_r32_rm32
	XOP_Blcs_r64_rm64
	XOP_Tzmsk_r32_rm32
	XOP_Tzmsk_r64_rm64
	XOP_Blcic_r32_rm32
	XOP_Blcic_r64_rm64
	XOP_Blsic_r32_rm32
	XOP_Blsic_r64_rm64
	XOP_T1mskc_r32_rm32
	XOP_T1mskc_r64_rm64
	XOP_Blcmsk_r32_rm32
	XOP_Blcmsk_r64_rm64
	XOP_Blci_r32_rm32
	XOP_Blci_r64_rm64
	XOP_Bextr_r32_rm32_imm32
	XOP_Bextr_r64_rm64_imm32

	MVEX_Vaddps_zmm_k1_zmm_zmmmt
	MVEX_Vmulps_zmm_k1_zmm_zmmmt
	MVEX_Vsubps_zmm_k1_zmm_zmmmt
	MVEX_Vpaddd_zmm_k1_zmm_zmmmt
	MVEX_Vfmadd231ps_zmm_k1_zmm_zmmmt
	MVEX_Vmovaps_zmm_k1_zmmmt
	MVEX_Vmovaps_mt_k1_zmm
	MVEX_Vmovdqa32_zmm_k1_zmmmt
	MVEX_Vmovdqa32_mt_k1_zmm
	MVEX_Vpgatherdd_zmm_k1_mvt
	MVEX_Vpscatterdd_mvt_k1_zmm

	NumCodes int = iota
)

// codeNames holds the name of every Code,
// split at the offsets in codeNameIndex.
const codeNames = "InvalidDeclareByteDeclareWordDeclareDwordDeclareQwordAdd_rm8_r8Add_rm16_r16Add_rm32_r32Add_rm64_r64Add_r8_rm8Add_r16_rm16Add_r32_rm32Add_r64_rm64Add_AL_imm8Add_AX_imm16Add_EAX_imm32Add_RAX_imm32Or_rm8_r8Or_rm16_r16Or_rm32_r32Or_rm64_r64Or_r8_rm8Or_r16_rm16Or_r32_rm32Or_r64_rm64Or_AL_imm8Or_AX_imm16Or_EAX_imm32Or_RAX_imm32Adc_rm8_r8Adc_rm16_r16Adc_rm32_r32Adc_rm64_r64Adc_r8_rm8Adc_r16_rm16Adc_r32_rm32Adc_r64_rm64Adc_AL_imm8Adc_AX_imm16Adc_EAX_imm32Adc_RAX_imm32Sbb_rm8_r8Sbb_rm16_r16Sbb_rm32_r32Sbb_rm64_r64Sbb_r8_rm8Sbb_r16_rm16Sbb_r32_rm32Sbb_r64_rm64Sbb_AL_imm8Sbb_AX_imm16Sbb_EAX_imm32Sbb_RAX_imm32And_rm8_r8And_rm16_r16And_rm32_r32And_rm64_r64And_r8_rm8And_r16_rm16And_r32_rm32And_r64_rm64And_AL_imm8And_AX_imm16And_EAX_imm32And_RAX_imm32Sub_rm8_r8Sub_rm16_r16Sub_rm32_r32Sub_rm64_r64Sub_r8_rm8Sub_r16_rm16Sub_r32_rm32Sub_r64_rm64Sub_AL_imm8Sub_AX_imm16Sub_EAX_imm32Sub_RAX_imm32Xor_rm8_r8Xor_rm16_r16Xor_rm32_r32Xor_rm64_r64Xor_r8_rm8Xor_r16_rm16Xor_r32_rm32Xor_r64_rm64Xor_AL_imm8Xor_AX_imm16Xor_EAX_imm32Xor_RAX_imm32Cmp_rm8_r8Cmp_rm16_r16Cmp_rm32_r32Cmp_rm64_r64Cmp_r8_rm8Cmp_r16_rm16Cmp_r32_rm32Cmp_r64_rm64Cmp_AL_imm8Cmp_AX_imm16Cmp_EAX_imm32Cmp_RAX_imm32Add_rm8_imm8Add_rm16_imm16Add_rm32_imm32Add_rm64_imm32Add_rm8_imm8_82Add_rm16_imm8Add_rm32_imm8Add_rm64_imm8Or_rm8_imm8Or_rm16_imm16Or_rm32_imm32Or_rm64_imm32Or_rm8_imm8_82Or_rm16_imm8Or_rm32_imm8Or_rm64_imm8Adc_rm8_imm8Adc_rm16_imm16Adc_rm32_imm32Adc_rm64_imm32Adc_rm8_imm8_82Adc_rm16_imm8Adc_rm32_imm8Adc_rm64_imm8Sbb_rm8_imm8Sbb_rm16_imm16Sbb_rm32_imm32Sbb_rm64_imm32Sbb_rm8_imm8_82Sbb_rm16_imm8Sbb_rm32_imm8Sbb_rm64_imm8And_rm8_imm8And_rm16_imm16And_rm32_imm32And_rm64_imm32And_rm8_imm8_82And_rm16_imm8And_rm32_imm8And_rm64_imm8Sub_rm8_imm8Sub_rm16_imm16Sub_rm32_imm32Sub_rm64_imm32Sub_rm8_imm8_82Sub_rm16_imm8Sub_rm32_imm8Sub_rm64_imm8Xor_rm8_imm8Xor_rm16_imm16Xor_rm32_imm32Xor_rm64_imm32Xor_rm8_imm8_82Xor_rm16_imm8Xor_rm32_imm8Xor_rm64_imm8Cmp_rm8_imm8Cmp_rm16_imm16Cmp_rm32_imm32Cmp_rm64_imm32Cmp_rm8_imm8_82Cmp_rm16_imm8Cmp_rm32_imm8Cmp_rm64_imm8Pushw_ESPushd_ESPopw_ESPopd_ESPushw_CSPushd_CSPushw_SSPushd_SSPopw_SSPopd_SSPushw_DSPushd_DSPopw_DSPopd_DSDaaDasAaaAasInc_r16Inc_r32Dec_r16Dec_r32Push_r16Push_r32Push_r64Pop_r16Pop_r32Pop_r64PushawPushadPopawPopadBound_r16_m1616Bound_r32_m3232Arpl_rm16_r16Movsxd_r16_rm16Movsxd_r32_rm32Movsxd_r64_rm32Push_imm16Pushd_imm32Pushq_imm32Imul_r16_rm16_imm16Imul_r32_rm32_imm32Imul_r64_rm64_imm32Pushw_imm8Pushd_imm8Pushq_imm8Imul_r16_rm16_imm8Imul_r32_rm32_imm8Imul_r64_rm64_imm8Insb_m8_DXInsw_m16_DXInsd_m32_DXOutsb_DX_m8Outsw_DX_m16Outsd_DX_m32Jo_rel8_16Jo_rel8_32Jo_rel8_64Jno_rel8_16Jno_rel8_32Jno_rel8_64Jb_rel8_16Jb_rel8_32Jb_rel8_64Jae_rel8_16Jae_rel8_32Jae_rel8_64Je_rel8_16Je_rel8_32Je_rel8_64Jne_rel8_16Jne_rel8_32Jne_rel8_64Jbe_rel8_16Jbe_rel8_32Jbe_rel8_64Ja_rel8_16Ja_rel8_32Ja_rel8_64Js_rel8_16Js_rel8_32Js_rel8_64Jns_rel8_16Jns_rel8_32Jns_rel8_64Jp_rel8_16Jp_rel8_32Jp_rel8_64Jnp_rel8_16Jnp_rel8_32Jnp_rel8_64Jl_rel8_16Jl_rel8_32Jl_rel8_64Jge_rel8_16Jge_rel8_32Jge_rel8_64Jle_rel8_16Jle_rel8_32Jle_rel8_64Jg_rel8_16Jg_rel8_32Jg_rel8_64Test_rm8_r8Test_rm16_r16Test_rm32_r32Test_rm64_r64Xchg_rm8_r8Xchg_rm16_r16Xchg_rm32_r32Xchg_rm64_r64Mov_rm8_r8Mov_rm16_r16Mov_rm32_r32Mov_rm64_r64Mov_r8_rm8Mov_r16_rm16Mov_r32_rm32Mov_r64_rm64Mov_rm16_SregMov_r32m16_SregMov_r64m16_SregLea_r16_mLea_r32_mLea_r64_mMov_Sreg_rm16Mov_Sreg_r32m16Mov_Sreg_r64m16Pop_rm16Pop_rm32Pop_rm64NopwNopdNopqPauseXchg_r16_AXXchg_r32_EAXXchg_r64_RAXCbwCwdeCdqeCwdCdqCqoCall_ptr1616Call_ptr1632WaitPushfwPushfdPushfqPopfwPopfdPopfqSahfLahfMov_AL_moffs8Mov_AX_moffs16Mov_EAX_moffs32Mov_RAX_moffs64Mov_moffs8_ALMov_moffs16_AXMov_moffs32_EAXMov_moffs64_RAXMovsb_m8_m8Movsw_m16_m16Movsd_m32_m32Movsq_m64_m64Cmpsb_m8_m8Cmpsw_m16_m16Cmpsd_m32_m32Cmpsq_m64_m64Test_AL_imm8Test_AX_imm16Test_EAX_imm32Test_RAX_imm32Stosb_m8_ALStosw_m16_AXStosd_m32_EAXStosq_m64_RAXLodsb_AL_m8Lodsw_AX_m16Lodsd_EAX_m32Lodsq_RAX_m64Scasb_AL_m8Scasw_AX_m16Scasd_EAX_m32Scasq_RAX_m64Mov_r8_imm8Mov_r16_imm16Mov_r32_imm32Mov_r64_imm64Rol_rm8_imm8Rol_rm16_imm8Rol_rm32_imm8Rol_rm64_imm8Rol_rm8_1Rol_rm16_1Rol_rm32_1Rol_rm64_1Rol_rm8_CLRol_rm16_CLRol_rm32_CLRol_rm64_CLRor_rm8_imm8Ror_rm16_imm8Ror_rm32_imm8Ror_rm64_imm8Ror_rm8_1Ror_rm16_1Ror_rm32_1Ror_rm64_1Ror_rm8_CLRor_rm16_CLRor_rm32_CLRor_rm64_CLRcl_rm8_imm8Rcl_rm16_imm8Rcl_rm32_imm8Rcl_rm64_imm8Rcl_rm8_1Rcl_rm16_1Rcl_rm32_1Rcl_rm64_1Rcl_rm8_CLRcl_rm16_CLRcl_rm32_CLRcl_rm64_CLRcr_rm8_imm8Rcr_rm16_imm8Rcr_rm32_imm8Rcr_rm64_imm8Rcr_rm8_1Rcr_rm16_1Rcr_rm32_1Rcr_rm64_1Rcr_rm8_CLRcr_rm16_CLRcr_rm32_CLRcr_rm64_CLShl_rm8_imm8Shl_rm16_imm8Shl_rm32_imm8Shl_rm64_imm8Shl_rm8_1Shl_rm16_1Shl_rm32_1Shl_rm64_1Shl_rm8_CLShl_rm16_CLShl_rm32_CLShl_rm64_CLShr_rm8_imm8Shr_rm16_imm8Shr_rm32_imm8Shr_rm64_imm8Shr_rm8_1Shr_rm16_1Shr_rm32_1Shr_rm64_1Shr_rm8_CLShr_rm16_CLShr_rm32_CLShr_rm64_CLSal_rm8_imm8Sal_rm16_imm8Sal_rm32_imm8Sal_rm64_imm8Sal_rm8_1Sal_rm16_1Sal_rm32_1Sal_rm64_1Sal_rm8_CLSal_rm16_CLSal_rm32_CLSal_rm64_CLSar_rm8_imm8Sar_rm16_imm8Sar_rm32_imm8Sar_rm64_imm8Sar_rm8_1Sar_rm16_1Sar_rm32_1Sar_rm64_1Sar_rm8_CLSar_rm16_CLSar_rm32_CLSar_rm64_CLRetnw_imm16Retnd_imm16Retnq_imm16RetnwRetndRetnqLes_r16_m1616Les_r32_m1632Lds_r16_m1616Lds_r32_m1632Mov_rm8_imm8Xabort_imm8Mov_rm16_imm16Mov_rm32_imm32Mov_rm64_imm32Xbegin_rel16Xbegin_rel32Enterw_imm16_imm8Enterd_imm16_imm8Enterq_imm16_imm8LeavewLeavedLeaveqRetfw_imm16Retfd_imm16Retfq_imm16RetfwRetfdRetfqInt3Int_imm8IntoIretwIretdIretqAam_imm8Aad_imm8SalcXlat_m8Loopne_rel8_16_CXLoopne_rel8_32_CXLoopne_rel8_16_ECXLoopne_rel8_32_ECXLoopne_rel8_64_ECXLoopne_rel8_16_RCXLoopne_rel8_64_RCXLoope_rel8_16_CXLoope_rel8_32_CXLoope_rel8_16_ECXLoope_rel8_32_ECXLoope_rel8_64_ECXLoope_rel8_16_RCXLoope_rel8_64_RCXLoop_rel8_16_CXLoop_rel8_32_CXLoop_rel8_16_ECXLoop_rel8_32_ECXLoop_rel8_64_ECXLoop_rel8_16_RCXLoop_rel8_64_RCXJcxz_rel8_16Jcxz_rel8_32Jecxz_rel8_16Jecxz_rel8_32Jecxz_rel8_64Jrcxz_rel8_16Jrcxz_rel8_64In_AL_imm8In_AX_imm8In_EAX_imm8Out_imm8_ALOut_imm8_AXOut_imm8_EAXCall_rel16Call_rel32_32Call_rel32_64Jmp_rel16Jmp_rel32_32Jmp_rel32_64Jmp_ptr1616Jmp_ptr1632Jmp_rel8_16Jmp_rel8_32Jmp_rel8_64In_AL_DXIn_AX_DXIn_EAX_DXOut_DX_ALOut_DX_AXOut_DX_EAXInt1HltCmcTest_rm8_imm8Test_rm16_imm16Test_rm32_imm32Test_rm64_imm32Not_rm8Not_rm16Not_rm32Not_rm64Neg_rm8Neg_rm16Neg_rm32Neg_rm64Mul_rm8Mul_rm16Mul_rm32Mul_rm64Imul_rm8Imul_rm16Imul_rm32Imul_rm64Div_rm8Div_rm16Div_rm32Div_rm64Idiv_rm8Idiv_rm16Idiv_rm32Idiv_rm64ClcStcCliStiCldStdInc_rm8Inc_rm16Inc_rm32Inc_rm64Dec_rm8Dec_rm16Dec_rm32Dec_rm64Call_rm16Call_rm32Call_rm64Call_m1616Call_m1632Call_m1664Jmp_rm16Jmp_rm32Jmp_rm64Jmp_m1616Jmp_m1632Jmp_m1664Push_rm16Push_rm32Push_rm64Sldt_rm16Sldt_r32m16Sldt_r64m16Str_rm16Str_r32m16Str_r64m16Lldt_rm16Ltr_rm16Verr_rm16Verw_rm16Sgdt_m1632Sgdt_m1664Sidt_m1632Sidt_m1664Lgdt_m1632Lgdt_m1664Lidt_m1632Lidt_m1664Smsw_rm16Smsw_r32m16Smsw_r64m16Lmsw_rm16Invlpg_mVmcallVmlaunchVmresumeVmxoffMonitorMwaitClacStacEnclsXgetbvXsetbvVmfuncXendXtestEncluSerializeRdpkruWrpkruRdtscpMonitorxMwaitxClzeroSwapgsLar_r16_rm16Lar_r32_rm32Lar_r64_rm64Lsl_r16_rm16Lsl_r32_rm32Lsl_r64_rm64Loadall286SyscallCltsLoadall386SysretdSysretqInvdWbinvdWbnoinvdCl1invmbUd2Prefetch_m8Prefetchw_m8Prefetchwt1_m8FemmsPrefetchnta_m8Prefetcht0_m8Prefetcht1_m8Prefetcht2_m8Bndldx_bnd_mibBndmov_bnd_bndm64Bndmov_bnd_bndm128Bndcl_bnd_rm32Bndcl_bnd_rm64Bndcu_bnd_rm32Bndcu_bnd_rm64Bndstx_mib_bndBndmov_bndm64_bndBndmov_bndm128_bndBndmk_bnd_m32Bndmk_bnd_m64Bndcn_bnd_rm32Bndcn_bnd_rm64Rdsspd_r32Rdsspq_r64Endbr64Endbr32Nop_rm16Nop_rm32Nop_rm64Reservednop_rm16_r16_0F0DReservednop_rm32_r32_0F0DReservednop_rm64_r64_0F0DReservednop_rm16_r16_0F18Reservednop_rm32_r32_0F18Reservednop_rm64_r64_0F18Reservednop_rm16_r16_0F19Reservednop_rm32_r32_0F19Reservednop_rm64_r64_0F19Reservednop_rm16_r16_0F1AReservednop_rm32_r32_0F1AReservednop_rm64_r64_0F1AReservednop_rm16_r16_0F1BReservednop_rm32_r32_0F1BReservednop_rm64_r64_0F1BReservednop_rm16_r16_0F1CReservednop_rm32_r32_0F1CReservednop_rm64_r64_0F1CReservednop_rm16_r16_0F1DReservednop_rm32_r32_0F1DReservednop_rm64_r64_0F1DReservednop_rm16_r16_0F1EReservednop_rm32_r32_0F1EReservednop_rm64_r64_0F1EReservednop_rm16_r16_0F1FReservednop_rm32_r32_0F1FReservednop_rm64_r64_0F1FMov_r32_crMov_r64_crMov_r32_drMov_r64_drMov_cr_r32Mov_cr_r64Mov_dr_r32Mov_dr_r64Mov_r32_trMov_tr_r32Umov_rm8_r8Umov_rm16_r16Umov_rm32_r32Umov_r8_rm8Umov_r16_rm16Umov_r32_rm32WrmsrRdtscRdmsrRdpmcSysenterGetsecSysexitdSysexitqCmovo_r16_rm16Cmovo_r32_rm32Cmovo_r64_rm64Cmovno_r16_rm16Cmovno_r32_rm32Cmovno_r64_rm64Cmovb_r16_rm16Cmovb_r32_rm32Cmovb_r64_rm64Cmovae_r16_rm16Cmovae_r32_rm32Cmovae_r64_rm64Cmove_r16_rm16Cmove_r32_rm32Cmove_r64_rm64Cmovne_r16_rm16Cmovne_r32_rm32Cmovne_r64_rm64Cmovbe_r16_rm16Cmovbe_r32_rm32Cmovbe_r64_rm64Cmova_r16_rm16Cmova_r32_rm32Cmova_r64_rm64Cmovs_r16_rm16Cmovs_r32_rm32Cmovs_r64_rm64Cmovns_r16_rm16Cmovns_r32_rm32Cmovns_r64_rm64Cmovp_r16_rm16Cmovp_r32_rm32Cmovp_r64_rm64Cmovnp_r16_rm16Cmovnp_r32_rm32Cmovnp_r64_rm64Cmovl_r16_rm16Cmovl_r32_rm32Cmovl_r64_rm64Cmovge_r16_rm16Cmovge_r32_rm32Cmovge_r64_rm64Cmovle_r16_rm16Cmovle_r32_rm32Cmovle_r64_rm64Cmovg_r16_rm16Cmovg_r32_rm32Cmovg_r64_rm64Jo_rel16Jo_rel32_32Jo_rel32_64Jno_rel16Jno_rel32_32Jno_rel32_64Jb_rel16Jb_rel32_32Jb_rel32_64Jae_rel16Jae_rel32_32Jae_rel32_64Je_rel16Je_rel32_32Je_rel32_64Jne_rel16Jne_rel32_32Jne_rel32_64Jbe_rel16Jbe_rel32_32Jbe_rel32_64Ja_rel16Ja_rel32_32Ja_rel32_64Js_rel16Js_rel32_32Js_rel32_64Jns_rel16Jns_rel32_32Jns_rel32_64Jp_rel16Jp_rel32_32Jp_rel32_64Jnp_rel16Jnp_rel32_32Jnp_rel32_64Jl_rel16Jl_rel32_32Jl_rel32_64Jge_rel16Jge_rel32_32Jge_rel32_64Jle_rel16Jle_rel32_32Jle_rel32_64Jg_rel16Jg_rel32_32Jg_rel32_64Seto_rm8Setno_rm8Setb_rm8Setae_rm8Sete_rm8Setne_rm8Setbe_rm8Seta_rm8Sets_rm8Setns_rm8Setp_rm8Setnp_rm8Setl_rm8Setge_rm8Setle_rm8Setg_rm8Pushw_FSPushd_FSPushq_FSPopw_FSPopd_FSPopq_FSPushw_GSPushd_GSPushq_GSPopw_GSPopd_GSPopq_GSCpuidRsmBt_rm16_r16Bt_rm32_r32Bt_rm64_r64Bts_rm16_r16Bts_rm32_r32Bts_rm64_r64Btr_rm16_r16Btr_rm32_r32Btr_rm64_r64Btc_rm16_r16Btc_rm32_r32Btc_rm64_r64Shld_rm16_r16_imm8Shld_rm32_r32_imm8Shld_rm64_r64_imm8Shld_rm16_r16_CLShld_rm32_r32_CLShld_rm64_r64_CLShrd_rm16_r16_imm8Shrd_rm32_r32_imm8Shrd_rm64_r64_imm8Shrd_rm16_r16_CLShrd_rm32_r32_CLShrd_rm64_r64_CLXbts_r16_rm16Xbts_r32_rm32Ibts_rm16_r16Ibts_rm32_r32Cmpxchg486_rm8_r8Cmpxchg486_rm16_r16Cmpxchg486_rm32_r32Imul_r16_rm16Imul_r32_rm32Imul_r64_rm64Cmpxchg_rm8_r8Cmpxchg_rm16_r16Cmpxchg_rm32_r32Cmpxchg_rm64_r64Lss_r16_m1616Lss_r32_m1632Lss_r64_m1664Lfs_r16_m1616Lfs_r32_m1632Lfs_r64_m1664Lgs_r16_m1616Lgs_r32_m1632Lgs_r64_m1664Movzx_r16_rm8Movzx_r32_rm8Movzx_r64_rm8Movzx_r16_rm16Movzx_r32_rm16Movzx_r64_rm16Movsx_r16_rm8Movsx_r32_rm8Movsx_r64_rm8Movsx_r16_rm16Movsx_r32_rm16Movsx_r64_rm16Popcnt_r16_rm16Popcnt_r32_rm32Popcnt_r64_rm64Jmpe_disp16Jmpe_disp32Ud1_r16_rm16Ud1_r32_rm32Ud1_r64_rm64Bt_rm16_imm8Bt_rm32_imm8Bt_rm64_imm8Bts_rm16_imm8Bts_rm32_imm8Bts_rm64_imm8Btr_rm16_imm8Btr_rm32_imm8Btr_rm64_imm8Btc_rm16_imm8Btc_rm32_imm8Btc_rm64_imm8Bsf_r16_rm16Bsf_r32_rm32Bsf_r64_rm64Tzcnt_r16_rm16Tzcnt_r32_rm32Tzcnt_r64_rm64Bsr_r16_rm16Bsr_r32_rm32Bsr_r64_rm64Lzcnt_r16_rm16Lzcnt_r32_rm32Lzcnt_r64_rm64Xadd_rm8_r8Xadd_rm16_r16Xadd_rm32_r32Xadd_rm64_r64Movnti_m32_r32Movnti_m64_r64Cmpxchg8b_m64Cmpxchg16b_m128Vmptrld_m64Vmclear_m64Vmxon_m64Vmptrst_m64Rdrand_r16Rdrand_r32Rdrand_r64Rdseed_r16Rdseed_r32Rdseed_r64Rdpid_r32Rdpid_r64Bswap_r16Bswap_r32Bswap_r64Ud0_r16_rm16Ud0_r32_rm32Ud0_r64_rm64Fxsave_m512byteFxsave64_m512byteFxrstor_m512byteFxrstor64_m512byteLdmxcsr_m32Stmxcsr_m32Xsave_memXsave64_memXrstor_memXrstor64_memXsaveopt_memClflush_m8Clwb_m8Clflushopt_m8LfenceMfenceSfencePcommitRdfsbase_r32Rdfsbase_r64Rdgsbase_r32Rdgsbase_r64Wrfsbase_r32Wrfsbase_r64Wrgsbase_r32Wrgsbase_r64Incsspd_r32Incsspq_r64Movups_xmm_xmmm128Movupd_xmm_xmmm128Movss_xmm_xmmm32Movsd_xmm_xmmm64Movups_xmmm128_xmmMovupd_xmmm128_xmmMovss_xmmm32_xmmMovsd_xmmm64_xmmMovlps_xmm_m64Movhlps_xmm_xmmMovlpd_xmm_m64Movsldup_xmm_xmmm128Movddup_xmm_xmmm64Movlps_m64_xmmMovlpd_m64_xmmUnpcklps_xmm_xmmm128Unpcklpd_xmm_xmmm128Unpckhps_xmm_xmmm128Unpckhpd_xmm_xmmm128Movhps_xmm_m64Movlhps_xmm_xmmMovhpd_xmm_m64Movshdup_xmm_xmmm128Movhps_m64_xmmMovhpd_m64_xmmMovaps_xmm_xmmm128Movapd_xmm_xmmm128Movaps_xmmm128_xmmMovapd_xmmm128_xmmCvtpi2ps_xmm_mmm64Cvtpi2pd_xmm_mmm64Cvtsi2ss_xmm_rm32Cvtsi2ss_xmm_rm64Cvtsi2sd_xmm_rm32Cvtsi2sd_xmm_rm64Movntps_m128_xmmMovntpd_m128_xmmCvttps2pi_mm_xmmm64Cvttpd2pi_mm_xmmm128Cvttss2si_r32_xmmm32Cvttss2si_r64_xmmm32Cvttsd2si_r32_xmmm64Cvttsd2si_r64_xmmm64Cvtps2pi_mm_xmmm64Cvtpd2pi_mm_xmmm128Cvtss2si_r32_xmmm32Cvtss2si_r64_xmmm32Cvtsd2si_r32_xmmm64Cvtsd2si_r64_xmmm64Ucomiss_xmm_xmmm32Ucomisd_xmm_xmmm64Comiss_xmm_xmmm32Comisd_xmm_xmmm64Movmskps_r32_xmmMovmskps_r64_xmmMovmskpd_r32_xmmMovmskpd_r64_xmmSqrtps_xmm_xmmm128Sqrtpd_xmm_xmmm128Sqrtss_xmm_xmmm32Sqrtsd_xmm_xmmm64Rsqrtps_xmm_xmmm128Rsqrtss_xmm_xmmm32Rcpps_xmm_xmmm128Rcpss_xmm_xmmm32Andps_xmm_xmmm128Andpd_xmm_xmmm128Andnps_xmm_xmmm128Andnpd_xmm_xmmm128Orps_xmm_xmmm128Orpd_xmm_xmmm128Xorps_xmm_xmmm128Xorpd_xmm_xmmm128Addps_xmm_xmmm128Addpd_xmm_xmmm128Addss_xmm_xmmm32Addsd_xmm_xmmm64Mulps_xmm_xmmm128Mulpd_xmm_xmmm128Mulss_xmm_xmmm32Mulsd_xmm_xmmm64Cvtps2pd_xmm_xmmm64Cvtpd2ps_xmm_xmmm128Cvtss2sd_xmm_xmmm32Cvtsd2ss_xmm_xmmm64Cvtdq2ps_xmm_xmmm128Cvtps2dq_xmm_xmmm128Cvttps2dq_xmm_xmmm128Subps_xmm_xmmm128Subpd_xmm_xmmm128Subss_xmm_xmmm32Subsd_xmm_xmmm64Minps_xmm_xmmm128Minpd_xmm_xmmm128Minss_xmm_xmmm32Minsd_xmm_xmmm64Divps_xmm_xmmm128Divpd_xmm_xmmm128Divss_xmm_xmmm32Divsd_xmm_xmmm64Maxps_xmm_xmmm128Maxpd_xmm_xmmm128Maxss_xmm_xmmm32Maxsd_xmm_xmmm64Cmpps_xmm_xmmm128_imm8Cmppd_xmm_xmmm128_imm8Cmpss_xmm_xmmm32_imm8Cmpsd_xmm_xmmm64_imm8Shufps_xmm_xmmm128_imm8Shufpd_xmm_xmmm128_imm8Haddpd_xmm_xmmm128Haddps_xmm_xmmm128Hsubpd_xmm_xmmm128Hsubps_xmm_xmmm128Addsubpd_xmm_xmmm128Addsubps_xmm_xmmm128Cvttpd2dq_xmm_xmmm128Cvtdq2pd_xmm_xmmm64Cvtpd2dq_xmm_xmmm128Lddqu_xmm_m128Punpcklbw_mm_mmm64Punpcklbw_xmm_xmmm128Punpcklwd_mm_mmm64Punpcklwd_xmm_xmmm128Punpckldq_mm_mmm64Punpckldq_xmm_xmmm128Packsswb_mm_mmm64Packsswb_xmm_xmmm128Pcmpgtb_mm_mmm64Pcmpgtb_xmm_xmmm128Pcmpgtw_mm_mmm64Pcmpgtw_xmm_xmmm128Pcmpgtd_mm_mmm64Pcmpgtd_xmm_xmmm128Packuswb_mm_mmm64Packuswb_xmm_xmmm128Punpckhbw_mm_mmm64Punpckhbw_xmm_xmmm128Punpckhwd_mm_mmm64Punpckhwd_xmm_xmmm128Punpckhdq_mm_mmm64Punpckhdq_xmm_xmmm128Packssdw_mm_mmm64Packssdw_xmm_xmmm128Pcmpeqb_mm_mmm64Pcmpeqb_xmm_xmmm128Pcmpeqw_mm_mmm64Pcmpeqw_xmm_xmmm128Pcmpeqd_mm_mmm64Pcmpeqd_xmm_xmmm128Psrlw_mm_mmm64Psrlw_xmm_xmmm128Psrld_mm_mmm64Psrld_xmm_xmmm128Psrlq_mm_mmm64Psrlq_xmm_xmmm128Paddq_mm_mmm64Paddq_xmm_xmmm128Pmullw_mm_mmm64Pmullw_xmm_xmmm128Psubusb_mm_mmm64Psubusb_xmm_xmmm128Psubusw_mm_mmm64Psubusw_xmm_xmmm128Pminub_mm_mmm64Pminub_xmm_xmmm128Pand_mm_mmm64Pand_xmm_xmmm128Paddusb_mm_mmm64Paddusb_xmm_xmmm128Paddusw_mm_mmm64Paddusw_xmm_xmmm128Pmaxub_mm_mmm64Pmaxub_xmm_xmmm128Pandn_mm_mmm64Pandn_xmm_xmmm128Pavgb_mm_mmm64Pavgb_xmm_xmmm128Psraw_mm_mmm64Psraw_xmm_xmmm128Psrad_mm_mmm64Psrad_xmm_xmmm128Pavgw_mm_mmm64Pavgw_xmm_xmmm128Pmulhuw_mm_mmm64Pmulhuw_xmm_xmmm128Pmulhw_mm_mmm64Pmulhw_xmm_xmmm128Psubsb_mm_mmm64Psubsb_xmm_xmmm128Psubsw_mm_mmm64Psubsw_xmm_xmmm128Pminsw_mm_mmm64Pminsw_xmm_xmmm128Por_mm_mmm64Por_xmm_xmmm128Paddsb_mm_mmm64Paddsb_xmm_xmmm128Paddsw_mm_mmm64Paddsw_xmm_xmmm128Pmaxsw_mm_mmm64Pmaxsw_xmm_xmmm128Pxor_mm_mmm64Pxor_xmm_xmmm128Psllw_mm_mmm64Psllw_xmm_xmmm128Pslld_mm_mmm64Pslld_xmm_xmmm128Psllq_mm_mmm64Psllq_xmm_xmmm128Pmuludq_mm_mmm64Pmuludq_xmm_xmmm128Pmaddwd_mm_mmm64Pmaddwd_xmm_xmmm128Psadbw_mm_mmm64Psadbw_xmm_xmmm128Psubb_mm_mmm64Psubb_xmm_xmmm128Psubw_mm_mmm64Psubw_xmm_xmmm128Psubd_mm_mmm64Psubd_xmm_xmmm128Psubq_mm_mmm64Psubq_xmm_xmmm128Paddb_mm_mmm64Paddb_xmm_xmmm128Paddw_mm_mmm64Paddw_xmm_xmmm128Paddd_mm_mmm64Paddd_xmm_xmmm128Punpcklqdq_xmm_xmmm128Punpckhqdq_xmm_xmmm128Movd_mm_rm32Movq_mm_rm64Movd_xmm_rm32Movq_xmm_rm64Movq_mm_mmm64Movdqa_xmm_xmmm128Movdqu_xmm_xmmm128Pshufw_mm_mmm64_imm8Pshufd_xmm_xmmm128_imm8Pshufhw_xmm_xmmm128_imm8Pshuflw_xmm_xmmm128_imm8Psrlw_mm_imm8Psrlw_xmm_imm8Psraw_mm_imm8Psraw_xmm_imm8Psllw_mm_imm8Psllw_xmm_imm8Psrld_mm_imm8Psrld_xmm_imm8Psrad_mm_imm8Psrad_xmm_imm8Pslld_mm_imm8Pslld_xmm_imm8Psrlq_mm_imm8Psrlq_xmm_imm8Psrldq_xmm_imm8Psllq_mm_imm8Psllq_xmm_imm8Pslldq_xmm_imm8EmmsVmread_rm32_r32Vmread_rm64_r64Extrq_xmm_imm8_imm8Insertq_xmm_xmm_imm8_imm8Vmwrite_r32_rm32Vmwrite_r64_rm64Extrq_xmm_xmmInsertq_xmm_xmmMovd_rm32_mmMovq_rm64_mmMovd_rm32_xmmMovq_rm64_xmmMovq_xmm_xmmm64Movq_mmm64_mmMovdqa_xmmm128_xmmMovdqu_xmmm128_xmmPinsrw_mm_r32m16_imm8Pinsrw_xmm_r32m16_imm8Pextrw_r32_mm_imm8Pextrw_r32_xmm_imm8Movq_xmmm64_xmmMovq2dq_xmm_mmMovdq2q_mm_xmmPmovmskb_r32_mmPmovmskb_r32_xmmMovntq_m64_mmMovntdq_m128_xmmMaskmovq_rDI_mm_mmMaskmovdqu_rDI_xmm_xmmPshufb_mm_mmm64Pshufb_xmm_xmmm128Phaddw_mm_mmm64Phaddw_xmm_xmmm128Phaddd_mm_mmm64Phaddd_xmm_xmmm128Pmaddubsw_mm_mmm64Pmaddubsw_xmm_xmmm128Pabsb_mm_mmm64Pabsb_xmm_xmmm128Pabsw_mm_mmm64Pabsw_xmm_xmmm128Pabsd_mm_mmm64Pabsd_xmm_xmmm128Pblendvb_xmm_xmmm128Ptest_xmm_xmmm128Pmovzxbw_xmm_xmmm64Pmulld_xmm_xmmm128Movbe_r16_m16Movbe_r32_m32Movbe_r64_m64Movbe_m16_r16Movbe_m32_r32Movbe_m64_r64Crc32_r32_rm8Crc32_r64_rm8Crc32_r32_rm16Crc32_r32_rm32Crc32_r64_rm64Adcx_r32_rm32Adcx_r64_rm64Adox_r32_rm32Adox_r64_rm64Palignr_mm_mmm64_imm8Palignr_xmm_xmmm128_imm8Roundps_xmm_xmmm128_imm8Roundsd_xmm_xmmm64_imm8Blendps_xmm_xmmm128_imm8Pextrd_rm32_xmm_imm8Pextrq_rm64_xmm_imm8Pinsrb_xmm_r32m8_imm8Pinsrd_xmm_rm32_imm8Pinsrq_xmm_rm64_imm8Pclmulqdq_xmm_xmmm128_imm8Pcmpistri_xmm_xmmm128_imm8Phaddsw_mm_mmm64Phaddsw_xmm_xmmm128Phsubw_mm_mmm64Phsubw_xmm_xmmm128Phsubd_mm_mmm64Phsubd_xmm_xmmm128Phsubsw_mm_mmm64Phsubsw_xmm_xmmm128Psignb_mm_mmm64Psignb_xmm_xmmm128Psignw_mm_mmm64Psignw_xmm_xmmm128Psignd_mm_mmm64Psignd_xmm_xmmm128Pmulhrsw_mm_mmm64Pmulhrsw_xmm_xmmm128Blendvps_xmm_xmmm128Blendvpd_xmm_xmmm128Pmovsxbw_xmm_xmmm64Pmovsxbd_xmm_xmmm32Pmovsxbq_xmm_xmmm16Pmovsxwd_xmm_xmmm64Pmovsxwq_xmm_xmmm32Pmovsxdq_xmm_xmmm64Pmovzxbd_xmm_xmmm32Pmovzxbq_xmm_xmmm16Pmovzxwd_xmm_xmmm64Pmovzxwq_xmm_xmmm32Pmovzxdq_xmm_xmmm64Pmuldq_xmm_xmmm128Pcmpeqq_xmm_xmmm128Packusdw_xmm_xmmm128Pcmpgtq_xmm_xmmm128Pminsb_xmm_xmmm128Pminsd_xmm_xmmm128Pminuw_xmm_xmmm128Pminud_xmm_xmmm128Pmaxsb_xmm_xmmm128Pmaxsd_xmm_xmmm128Pmaxuw_xmm_xmmm128Pmaxud_xmm_xmmm128Phminposuw_xmm_xmmm128Aesimc_xmm_xmmm128Aesenc_xmm_xmmm128Aesenclast_xmm_xmmm128Aesdec_xmm_xmmm128Aesdeclast_xmm_xmmm128Movntdqa_xmm_m128Invept_r32_m128Invept_r64_m128Invvpid_r32_m128Invvpid_r64_m128Invpcid_r32_m128Invpcid_r64_m128Roundpd_xmm_xmmm128_imm8Roundss_xmm_xmmm32_imm8Blendpd_xmm_xmmm128_imm8Pblendw_xmm_xmmm128_imm8Pextrb_r32m8_xmm_imm8Pextrb_r64m8_xmm_imm8Pextrw_r32m16_xmm_imm8Pextrw_r64m16_xmm_imm8Extractps_rm32_xmm_imm8Extractps_r64m32_xmm_imm8Insertps_xmm_xmmm32_imm8Dpps_xmm_xmmm128_imm8Dppd_xmm_xmmm128_imm8Mpsadbw_xmm_xmmm128_imm8Pcmpestrm_xmm_xmmm128_imm8Pcmpestri_xmm_xmmm128_imm8Pcmpistrm_xmm_xmmm128_imm8Aeskeygenassist_xmm_xmmm128_imm8Fadd_m32fpFadd_st0_stiFmul_m32fpFmul_st0_stiFcom_m32fpFcom_st0_stiFcomp_m32fpFcomp_st0_stiFsub_m32fpFsub_st0_stiFsubr_m32fpFsubr_st0_stiFdiv_m32fpFdiv_st0_stiFdivr_m32fpFdivr_st0_stiFld_m32fpFst_m32fpFstp_m32fpFldenv_m14byteFldenv_m28byteFldcw_m2byteFnstenv_m14byteFnstenv_m28byteFnstcw_m2byteFld_stiFxch_st0_stiFnopFchsFabsFtstFxamFld1Fldl2tFldl2eFldpiFldlg2Fldln2FldzF2xm1Fyl2xFptanFpatanFxtractFprem1FdecstpFincstpFpremFyl2xp1FsqrtFsincosFrndintFscaleFsinFcosFiadd_m32intFimul_m32intFicom_m32intFicomp_m32intFisub_m32intFisubr_m32intFidiv_m32intFidivr_m32intFcmovb_st0_stiFcmove_st0_stiFcmovbe_st0_stiFcmovu_st0_stiFucomppFild_m32intFisttp_m32intFist_m32intFistp_m32intFld_m80fpFstp_m80fpFcmovnb_st0_stiFcmovne_st0_stiFcmovnbe_st0_stiFcmovnu_st0_stiFneniFndisiFnclexFninitFnsetpmFrstpmFucomi_st0_stiFcomi_st0_stiFadd_m64fpFmul_m64fpFcom_m64fpFcomp_m64fpFsub_m64fpFsubr_m64fpFdiv_m64fpFdivr_m64fpFadd_sti_st0Fmul_sti_st0Fsubr_sti_st0Fsub_sti_st0Fdivr_sti_st0Fdiv_sti_st0Fld_m64fpFisttp_m64intFst_m64fpFstp_m64fpFrstor_m94byteFrstor_m108byteFnsave_m94byteFnsave_m108byteFnstsw_m2byteFfree_stiFst_stiFstp_stiFucom_st0_stiFucomp_st0_stiFiadd_m16intFimul_m16intFicom_m16intFicomp_m16intFisub_m16intFisubr_m16intFidiv_m16intFidivr_m16intFaddp_sti_st0Fmulp_sti_st0Fsubrp_sti_st0Fsubp_sti_st0Fdivrp_sti_st0Fdivp_sti_st0FcomppFild_m16intFisttp_m16intFist_m16intFistp_m16intFbld_m80bcdFild_m64intFbstp_m80bcdFistp_m64intFfreep_stiFnstsw_AXFucomip_st0_stiFcomip_st0_stiVEX_Vaddps_xmm_xmm_xmmm128VEX_Vaddps_ymm_ymm_ymmm256VEX_Vaddpd_xmm_xmm_xmmm128VEX_Vaddpd_ymm_ymm_ymmm256VEX_Vaddss_xmm_xmm_xmmm32VEX_Vaddsd_xmm_xmm_xmmm64VEX_Vmulps_xmm_xmm_xmmm128VEX_Vmulps_ymm_ymm_ymmm256VEX_Vmulpd_xmm_xmm_xmmm128VEX_Vmulpd_ymm_ymm_ymmm256VEX_Vmulss_xmm_xmm_xmmm32VEX_Vmulsd_xmm_xmm_xmmm64VEX_Vsubps_xmm_xmm_xmmm128VEX_Vsubps_ymm_ymm_ymmm256VEX_Vsubpd_xmm_xmm_xmmm128VEX_Vsubpd_ymm_ymm_ymmm256VEX_Vsubss_xmm_xmm_xmmm32VEX_Vsubsd_xmm_xmm_xmmm64VEX_Vminps_xmm_xmm_xmmm128VEX_Vminps_ymm_ymm_ymmm256VEX_Vminpd_xmm_xmm_xmmm128VEX_Vminpd_ymm_ymm_ymmm256VEX_Vminss_xmm_xmm_xmmm32VEX_Vminsd_xmm_xmm_xmmm64VEX_Vdivps_xmm_xmm_xmmm128VEX_Vdivps_ymm_ymm_ymmm256VEX_Vdivpd_xmm_xmm_xmmm128VEX_Vdivpd_ymm_ymm_ymmm256VEX_Vdivss_xmm_xmm_xmmm32VEX_Vdivsd_xmm_xmm_xmmm64VEX_Vmaxps_xmm_xmm_xmmm128VEX_Vmaxps_ymm_ymm_ymmm256VEX_Vmaxpd_xmm_xmm_xmmm128VEX_Vmaxpd_ymm_ymm_ymmm256VEX_Vmaxss_xmm_xmm_xmmm32VEX_Vmaxsd_xmm_xmm_xmmm64VEX_Vandps_xmm_xmm_xmmm128VEX_Vandps_ymm_ymm_ymmm256VEX_Vandpd_xmm_xmm_xmmm128VEX_Vandpd_ymm_ymm_ymmm256VEX_Vandnps_xmm_xmm_xmmm128VEX_Vandnps_ymm_ymm_ymmm256VEX_Vandnpd_xmm_xmm_xmmm128VEX_Vandnpd_ymm_ymm_ymmm256VEX_Vorps_xmm_xmm_xmmm128VEX_Vorps_ymm_ymm_ymmm256VEX_Vorpd_xmm_xmm_xmmm128VEX_Vorpd_ymm_ymm_ymmm256VEX_Vxorps_xmm_xmm_xmmm128VEX_Vxorps_ymm_ymm_ymmm256VEX_Vxorpd_xmm_xmm_xmmm128VEX_Vxorpd_ymm_ymm_ymmm256VEX_Vsqrtps_xmm_xmmm128VEX_Vsqrtps_ymm_ymmm256VEX_Vsqrtpd_xmm_xmmm128VEX_Vsqrtpd_ymm_ymmm256VEX_Vmovups_xmm_xmmm128VEX_Vmovups_ymm_ymmm256VEX_Vmovups_xmmm128_xmmVEX_Vmovups_ymmm256_ymmVEX_Vmovupd_xmm_xmmm128VEX_Vmovupd_ymm_ymmm256VEX_Vmovupd_xmmm128_xmmVEX_Vmovupd_ymmm256_ymmVEX_Vmovaps_xmm_xmmm128VEX_Vmovaps_ymm_ymmm256VEX_Vmovaps_xmmm128_xmmVEX_Vmovaps_ymmm256_ymmVEX_Vmovapd_xmm_xmmm128VEX_Vmovapd_ymm_ymmm256VEX_Vmovapd_xmmm128_xmmVEX_Vmovapd_ymmm256_ymmVEX_Vmovdqa_xmm_xmmm128VEX_Vmovdqa_ymm_ymmm256VEX_Vmovdqa_xmmm128_xmmVEX_Vmovdqa_ymmm256_ymmVEX_Vmovdqu_xmm_xmmm128VEX_Vmovdqu_ymm_ymmm256VEX_Vmovdqu_xmmm128_xmmVEX_Vmovdqu_ymmm256_ymmVEX_Vmovss_xmm_xmm_xmmVEX_Vmovss_xmm_m32VEX_Vmovss_xmm_xmm_xmm_0F11VEX_Vmovss_m32_xmmVEX_Vmovsd_xmm_xmm_xmmVEX_Vmovsd_xmm_m64VEX_Vmovsd_xmm_xmm_xmm_0F11VEX_Vmovsd_m64_xmmVEX_Vcmpps_xmm_xmm_xmmm128_imm8VEX_Vcmpps_ymm_ymm_ymmm256_imm8VEX_Vcmppd_xmm_xmm_xmmm128_imm8VEX_Vcmppd_ymm_ymm_ymmm256_imm8VEX_Vcmpss_xmm_xmm_xmmm32_imm8VEX_Vcmpsd_xmm_xmm_xmmm64_imm8VEX_VzeroupperVEX_VzeroallVEX_Vldmxcsr_m32VEX_Vstmxcsr_m32VEX_Vpxor_xmm_xmm_xmmm128VEX_Vpxor_ymm_ymm_ymmm256VEX_Vpand_xmm_xmm_xmmm128VEX_Vpand_ymm_ymm_ymmm256VEX_Vpor_xmm_xmm_xmmm128VEX_Vpor_ymm_ymm_ymmm256VEX_Vpaddb_xmm_xmm_xmmm128VEX_Vpaddb_ymm_ymm_ymmm256VEX_Vpaddw_xmm_xmm_xmmm128VEX_Vpaddw_ymm_ymm_ymmm256VEX_Vpaddd_xmm_xmm_xmmm128VEX_Vpaddd_ymm_ymm_ymmm256VEX_Vpaddq_xmm_xmm_xmmm128VEX_Vpaddq_ymm_ymm_ymmm256VEX_Vpsubd_xmm_xmm_xmmm128VEX_Vpsubd_ymm_ymm_ymmm256VEX_Vpcmpeqb_xmm_xmm_xmmm128VEX_Vpcmpeqb_ymm_ymm_ymmm256VEX_Vpcmpeqd_xmm_xmm_xmmm128VEX_Vpcmpeqd_ymm_ymm_ymmm256VEX_Vpmulld_xmm_xmm_xmmm128VEX_Vpmulld_ymm_ymm_ymmm256VEX_Vpshufb_xmm_xmm_xmmm128VEX_Vpshufb_ymm_ymm_ymmm256VEX_Vptest_xmm_xmmm128VEX_Vptest_ymm_ymmm256VEX_Vblendvps_xmm_xmm_xmmm128_xmmVEX_Vblendvps_ymm_ymm_ymmm256_ymmVEX_Vblendvpd_xmm_xmm_xmmm128_xmmVEX_Vblendvpd_ymm_ymm_ymmm256_ymmVEX_Vpblendvb_xmm_xmm_xmmm128_xmmVEX_Vpblendvb_ymm_ymm_ymmm256_ymmVEX_Vbroadcastss_xmm_m32VEX_Vbroadcastss_ymm_m32VEX_Vbroadcastss_xmm_xmmVEX_Vbroadcastss_ymm_xmmVEX_Vbroadcastsd_ymm_m64VEX_Vbroadcastsd_ymm_xmmVEX_Vpbroadcastd_xmm_xmmm32VEX_Vpbroadcastd_ymm_xmmm32VEX_Vinsertf128_ymm_ymm_xmmm128_imm8VEX_Vextractf128_xmmm128_ymm_imm8VEX_Vperm2f128_ymm_ymm_ymmm256_imm8VEX_Vpermq_ymm_ymmm256_imm8VEX_Vpermd_ymm_ymm_ymmm256VEX_Vpgatherdd_xmm_vm32x_xmmVEX_Vpgatherdd_ymm_vm32y_ymmVEX_Vpgatherqq_xmm_vm64x_xmmVEX_Vpgatherqq_ymm_vm64y_ymmVEX_Vgatherdps_xmm_vm32x_xmmVEX_Vgatherdps_ymm_vm32y_ymmVEX_Vgatherqpd_xmm_vm64x_xmmVEX_Vgatherqpd_ymm_vm64y_ymmVEX_Vfmadd231ps_xmm_xmm_xmmm128VEX_Vfmadd231ps_ymm_ymm_ymmm256VEX_Vfmadd231pd_xmm_xmm_xmmm128VEX_Vfmadd231pd_ymm_ymm_ymmm256VEX_Vfmadd213ps_xmm_xmm_xmmm128VEX_Vfmadd213ps_ymm_ymm_ymmm256VEX_Vfmadd132ps_xmm_xmm_xmmm128VEX_Vfmadd132ps_ymm_ymm_ymmm256VEX_Vfmadd231ss_xmm_xmm_xmmm32VEX_Vfmadd231sd_xmm_xmm_xmmm64VEX_Vmovd_xmm_rm32VEX_Vmovq_xmm_rm64VEX_Vmovd_rm32_xmmVEX_Vmovq_rm64_xmmVEX_Vmovq_xmm_xmmm64VEX_Vcvtsi2ss_xmm_xmm_rm32VEX_Vcvtsi2ss_xmm_xmm_rm64VEX_Kmovw_kr_km16VEX_Kmovw_m16_krVEX_Kmovb_kr_km8VEX_Kmovb_m8_krVEX_Kmovd_kr_km32VEX_Kmovd_m32_krVEX_Kmovq_kr_km64VEX_Kmovq_m64_krVEX_Kmovw_kr_r32VEX_Kmovb_kr_r32VEX_Kmovd_kr_r32VEX_Kmovq_kr_r64VEX_Kmovw_r32_krVEX_Kmovb_r32_krVEX_Kmovd_r32_krVEX_Kmovq_r64_krVEX_Kandw_kr_kr_krVEX_Kandnw_kr_kr_krVEX_Korw_kr_kr_krVEX_Kxnorw_kr_kr_krVEX_Kxorw_kr_kr_krVEX_Knotw_kr_krVEX_Kortestw_kr_krVEX_Andn_r32_r32_rm32VEX_Andn_r64_r64_rm64VEX_Bextr_r32_rm32_r32VEX_Bextr_r64_rm64_r64VEX_Shlx_r32_rm32_r32VEX_Shlx_r64_rm64_r64VEX_Sarx_r32_rm32_r32VEX_Sarx_r64_rm64_r64VEX_Shrx_r32_rm32_r32VEX_Shrx_r64_rm64_r64VEX_Blsr_r32_rm32VEX_Blsr_r64_rm64VEX_Blsmsk_r32_rm32VEX_Blsmsk_r64_rm64VEX_Blsi_r32_rm32VEX_Blsi_r64_rm64VEX_Bzhi_r32_rm32_r32VEX_Bzhi_r64_rm64_r64VEX_Pdep_r32_r32_rm32VEX_Pdep_r64_r64_rm64VEX_Pext_r32_r32_rm32VEX_Pext_r64_r64_rm64VEX_Mulx_r32_r32_rm32VEX_Mulx_r64_r64_rm64VEX_Rorx_r32_rm32_imm8VEX_Rorx_r64_rm64_imm8VEX_Vpermil2ps_xmm_xmm_xmmm128_xmm_imm4VEX_Vpermil2ps_xmm_xmm_xmm_xmmm128_imm4VEX_Vpermil2ps_ymm_ymm_ymmm256_ymm_imm4VEX_Vpermil2ps_ymm_ymm_ymm_ymmm256_imm4VEX_Vphaddsw_xmm_xmm_xmmm128VEX_Vphaddsw_ymm_ymm_ymmm256VEX_Vphsubw_xmm_xmm_xmmm128VEX_Vphsubw_ymm_ymm_ymmm256VEX_Vphsubd_xmm_xmm_xmmm128VEX_Vphsubd_ymm_ymm_ymmm256VEX_Vphsubsw_xmm_xmm_xmmm128VEX_Vphsubsw_ymm_ymm_ymmm256VEX_Vpsignb_xmm_xmm_xmmm128VEX_Vpsignb_ymm_ymm_ymmm256VEX_Vpsignw_xmm_xmm_xmmm128VEX_Vpsignw_ymm_ymm_ymmm256VEX_Vpsignd_xmm_xmm_xmmm128VEX_Vpsignd_ymm_ymm_ymmm256VEX_Vpmulhrsw_xmm_xmm_xmmm128VEX_Vpmulhrsw_ymm_ymm_ymmm256VEX_Vpmuldq_xmm_xmm_xmmm128VEX_Vpmuldq_ymm_ymm_ymmm256VEX_Vpcmpeqq_xmm_xmm_xmmm128VEX_Vpcmpeqq_ymm_ymm_ymmm256VEX_Vpackusdw_xmm_xmm_xmmm128VEX_Vpackusdw_ymm_ymm_ymmm256VEX_Vpcmpgtq_xmm_xmm_xmmm128VEX_Vpcmpgtq_ymm_ymm_ymmm256VEX_Vpminsb_xmm_xmm_xmmm128VEX_Vpminsb_ymm_ymm_ymmm256VEX_Vpminsd_xmm_xmm_xmmm128VEX_Vpminsd_ymm_ymm_ymmm256VEX_Vpminuw_xmm_xmm_xmmm128VEX_Vpminuw_ymm_ymm_ymmm256VEX_Vpminud_xmm_xmm_xmmm128VEX_Vpminud_ymm_ymm_ymmm256VEX_Vpmaxsb_xmm_xmm_xmmm128VEX_Vpmaxsb_ymm_ymm_ymmm256VEX_Vpmaxsd_xmm_xmm_xmmm128VEX_Vpmaxsd_ymm_ymm_ymmm256VEX_Vpmaxuw_xmm_xmm_xmmm128VEX_Vpmaxuw_ymm_ymm_ymmm256VEX_Vpmaxud_xmm_xmm_xmmm128VEX_Vpmaxud_ymm_ymm_ymmm256VEX_Vaesenc_xmm_xmm_xmmm128VEX_Vaesenc_ymm_ymm_ymmm256VEX_Vaesenclast_xmm_xmm_xmmm128VEX_Vaesenclast_ymm_ymm_ymmm256VEX_Vaesdec_xmm_xmm_xmmm128VEX_Vaesdec_ymm_ymm_ymmm256VEX_Vaesdeclast_xmm_xmm_xmmm128VEX_Vaesdeclast_ymm_ymm_ymmm256VEX_Vpblendw_xmm_xmm_xmmm128_imm8VEX_Vpblendw_ymm_ymm_ymmm256_imm8VEX_Vdpps_xmm_xmm_xmmm128_imm8VEX_Vdpps_ymm_ymm_ymmm256_imm8VEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8VEX_Vpclmulqdq_ymm_ymm_ymmm256_imm8VEX_Vpmovsxbw_xmm_xmmm64VEX_Vpmovsxbw_ymm_xmmm128VEX_Vpmovsxbd_xmm_xmmm32VEX_Vpmovsxbd_ymm_xmmm64VEX_Vpmovsxbq_xmm_xmmm16VEX_Vpmovsxbq_ymm_xmmm32VEX_Vpmovsxwd_xmm_xmmm64VEX_Vpmovsxwd_ymm_xmmm128VEX_Vpmovsxwq_xmm_xmmm32VEX_Vpmovsxwq_ymm_xmmm64VEX_Vpmovsxdq_xmm_xmmm64VEX_Vpmovsxdq_ymm_xmmm128VEX_Vpmovzxbw_xmm_xmmm64VEX_Vpmovzxbw_ymm_xmmm128VEX_Vpmovzxbd_xmm_xmmm32VEX_Vpmovzxbd_ymm_xmmm64VEX_Vpmovzxbq_xmm_xmmm16VEX_Vpmovzxbq_ymm_xmmm32VEX_Vpmovzxwd_xmm_xmmm64VEX_Vpmovzxwd_ymm_xmmm128VEX_Vpmovzxwq_xmm_xmmm32VEX_Vpmovzxwq_ymm_xmmm64VEX_Vpmovzxdq_xmm_xmmm64VEX_Vpmovzxdq_ymm_xmmm128VEX_Vaesimc_xmm_xmmm128VEX_Vaeskeygenassist_xmm_xmmm128_imm8VEX_Vinsertps_xmm_xmm_xmmm32_imm8VEX_Vextractps_rm32_xmm_imm8EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_erEVEX_Vaddpd_xmm_k1z_xmm_xmmm128b64EVEX_Vaddpd_ymm_k1z_ymm_ymmm256b64EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_erEVEX_Vaddss_xmm_k1z_xmm_xmmm32_erEVEX_Vaddsd_xmm_k1z_xmm_xmmm64_erEVEX_Vmulps_xmm_k1z_xmm_xmmm128b32EVEX_Vmulps_ymm_k1z_ymm_ymmm256b32EVEX_Vmulps_zmm_k1z_zmm_zmmm512b32_erEVEX_Vmulpd_xmm_k1z_xmm_xmmm128b64EVEX_Vmulpd_ymm_k1z_ymm_ymmm256b64EVEX_Vmulpd_zmm_k1z_zmm_zmmm512b64_erEVEX_Vmulss_xmm_k1z_xmm_xmmm32_erEVEX_Vmulsd_xmm_k1z_xmm_xmmm64_erEVEX_Vsubps_xmm_k1z_xmm_xmmm128b32EVEX_Vsubps_ymm_k1z_ymm_ymmm256b32EVEX_Vsubps_zmm_k1z_zmm_zmmm512b32_erEVEX_Vsubpd_xmm_k1z_xmm_xmmm128b64EVEX_Vsubpd_ymm_k1z_ymm_ymmm256b64EVEX_Vsubpd_zmm_k1z_zmm_zmmm512b64_erEVEX_Vsubss_xmm_k1z_xmm_xmmm32_erEVEX_Vsubsd_xmm_k1z_xmm_xmmm64_erEVEX_Vdivps_xmm_k1z_xmm_xmmm128b32EVEX_Vdivps_ymm_k1z_ymm_ymmm256b32EVEX_Vdivps_zmm_k1z_zmm_zmmm512b32_erEVEX_Vdivpd_xmm_k1z_xmm_xmmm128b64EVEX_Vdivpd_ymm_k1z_ymm_ymmm256b64EVEX_Vdivpd_zmm_k1z_zmm_zmmm512b64_erEVEX_Vdivss_xmm_k1z_xmm_xmmm32_erEVEX_Vdivsd_xmm_k1z_xmm_xmmm64_erEVEX_Vminps_xmm_k1z_xmm_xmmm128b32EVEX_Vminps_ymm_k1z_ymm_ymmm256b32EVEX_Vminps_zmm_k1z_zmm_zmmm512b32_saeEVEX_Vminpd_xmm_k1z_xmm_xmmm128b64EVEX_Vminpd_ymm_k1z_ymm_ymmm256b64EVEX_Vminpd_zmm_k1z_zmm_zmmm512b64_saeEVEX_Vminss_xmm_k1z_xmm_xmmm32_saeEVEX_Vminsd_xmm_k1z_xmm_xmmm64_saeEVEX_Vmaxps_xmm_k1z_xmm_xmmm128b32EVEX_Vmaxps_ymm_k1z_ymm_ymmm256b32EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_saeEVEX_Vmaxpd_xmm_k1z_xmm_xmmm128b64EVEX_Vmaxpd_ymm_k1z_ymm_ymmm256b64EVEX_Vmaxpd_zmm_k1z_zmm_zmmm512b64_saeEVEX_Vmaxss_xmm_k1z_xmm_xmmm32_saeEVEX_Vmaxsd_xmm_k1z_xmm_xmmm64_saeEVEX_Vsqrtps_xmm_k1z_xmmm128b32EVEX_Vsqrtps_ymm_k1z_ymmm256b32EVEX_Vsqrtps_zmm_k1z_zmmm512b32_erEVEX_Vsqrtpd_xmm_k1z_xmmm128b64EVEX_Vsqrtpd_ymm_k1z_ymmm256b64EVEX_Vsqrtpd_zmm_k1z_zmmm512b64_erEVEX_Vmovups_xmm_k1z_xmmm128EVEX_Vmovups_ymm_k1z_ymmm256EVEX_Vmovups_zmm_k1z_zmmm512EVEX_Vmovups_xmmm128_k1_xmmEVEX_Vmovups_ymmm256_k1_ymmEVEX_Vmovups_zmmm512_k1_zmmEVEX_Vmovupd_xmm_k1z_xmmm128EVEX_Vmovupd_ymm_k1z_ymmm256EVEX_Vmovupd_zmm_k1z_zmmm512EVEX_Vmovupd_xmmm128_k1_xmmEVEX_Vmovupd_ymmm256_k1_ymmEVEX_Vmovupd_zmmm512_k1_zmmEVEX_Vmovaps_xmm_k1z_xmmm128EVEX_Vmovaps_ymm_k1z_ymmm256EVEX_Vmovaps_zmm_k1z_zmmm512EVEX_Vmovaps_xmmm128_k1_xmmEVEX_Vmovaps_ymmm256_k1_ymmEVEX_Vmovaps_zmmm512_k1_zmmEVEX_Vmovapd_xmm_k1z_xmmm128EVEX_Vmovapd_ymm_k1z_ymmm256EVEX_Vmovapd_zmm_k1z_zmmm512EVEX_Vmovapd_xmmm128_k1_xmmEVEX_Vmovapd_ymmm256_k1_ymmEVEX_Vmovapd_zmmm512_k1_zmmEVEX_Vmovdqa32_xmm_k1z_xmmm128EVEX_Vmovdqa32_ymm_k1z_ymmm256EVEX_Vmovdqa32_zmm_k1z_zmmm512EVEX_Vmovdqa32_zmmm512_k1_zmmEVEX_Vmovdqa64_xmm_k1z_xmmm128EVEX_Vmovdqa64_ymm_k1z_ymmm256EVEX_Vmovdqa64_zmm_k1z_zmmm512EVEX_Vmovdqa64_zmmm512_k1_zmmEVEX_Vmovdqu32_xmm_k1z_xmmm128EVEX_Vmovdqu32_ymm_k1z_ymmm256EVEX_Vmovdqu32_zmm_k1z_zmmm512EVEX_Vmovdqu32_zmmm512_k1_zmmEVEX_Vmovdqu64_xmm_k1z_xmmm128EVEX_Vmovdqu64_ymm_k1z_ymmm256EVEX_Vmovdqu64_zmm_k1z_zmmm512EVEX_Vmovdqu64_zmmm512_k1_zmmEVEX_Vmovdqu8_zmm_k1z_zmmm512EVEX_Vmovdqu16_zmm_k1z_zmmm512EVEX_Vpxord_xmm_k1z_xmm_xmmm128b32EVEX_Vpxord_ymm_k1z_ymm_ymmm256b32EVEX_Vpxord_zmm_k1z_zmm_zmmm512b32EVEX_Vpxorq_xmm_k1z_xmm_xmmm128b64EVEX_Vpxorq_ymm_k1z_ymm_ymmm256b64EVEX_Vpxorq_zmm_k1z_zmm_zmmm512b64EVEX_Vpandd_xmm_k1z_xmm_xmmm128b32EVEX_Vpandd_ymm_k1z_ymm_ymmm256b32EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32EVEX_Vpandq_xmm_k1z_xmm_xmmm128b64EVEX_Vpandq_ymm_k1z_ymm_ymmm256b64EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64EVEX_Vpord_xmm_k1z_xmm_xmmm128b32EVEX_Vpord_ymm_k1z_ymm_ymmm256b32EVEX_Vpord_zmm_k1z_zmm_zmmm512b32EVEX_Vporq_xmm_k1z_xmm_xmmm128b64EVEX_Vporq_ymm_k1z_ymm_ymmm256b64EVEX_Vporq_zmm_k1z_zmm_zmmm512b64EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32EVEX_Vpaddd_ymm_k1z_ymm_ymmm256b32EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32EVEX_Vpaddq_xmm_k1z_xmm_xmmm128b64EVEX_Vpaddq_ymm_k1z_ymm_ymmm256b64EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64EVEX_Vpsubd_xmm_k1z_xmm_xmmm128b32EVEX_Vpsubd_ymm_k1z_ymm_ymmm256b32EVEX_Vpsubd_zmm_k1z_zmm_zmmm512b32EVEX_Vpmulld_xmm_k1z_xmm_xmmm128b32EVEX_Vpmulld_ymm_k1z_ymm_ymmm256b32EVEX_Vpmulld_zmm_k1z_zmm_zmmm512b32EVEX_Vpaddb_xmm_k1z_xmm_xmmm128EVEX_Vpaddb_ymm_k1z_ymm_ymmm256EVEX_Vpaddb_zmm_k1z_zmm_zmmm512EVEX_Vcvtne2ps2bf16_xmm_k1z_xmm_xmmm128b32EVEX_Vcvtne2ps2bf16_ymm_k1z_ymm_ymmm256b32EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32EVEX_Vdpbf16ps_xmm_k1z_xmm_xmmm128b32EVEX_Vdpbf16ps_ymm_k1z_ymm_ymmm256b32EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32EVEX_Vcvtneps2bf16_xmm_k1z_xmmm128b32EVEX_Vcvtneps2bf16_xmm_k1z_ymmm256b32EVEX_Vcvtneps2bf16_ymm_k1z_zmmm512b32EVEX_Vfmadd231ps_xmm_k1z_xmm_xmmm128b32EVEX_Vfmadd231ps_ymm_k1z_ymm_ymmm256b32EVEX_Vfmadd231ps_zmm_k1z_zmm_zmmm512b32_erEVEX_Vfmadd231pd_xmm_k1z_xmm_xmmm128b64EVEX_Vfmadd231pd_ymm_k1z_ymm_ymmm256b64EVEX_Vfmadd231pd_zmm_k1z_zmm_zmmm512b64_erEVEX_Vaddph_xmm_k1z_xmm_xmmm128b16EVEX_Vaddph_ymm_k1z_ymm_ymmm256b16EVEX_Vaddph_zmm_k1z_zmm_zmmm512b16_erEVEX_Vpternlogd_xmm_k1z_xmm_xmmm128b32_imm8EVEX_Vpternlogd_ymm_k1z_ymm_ymmm256b32_imm8EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8EVEX_Vpternlogq_xmm_k1z_xmm_xmmm128b64_imm8EVEX_Vpternlogq_ymm_k1z_ymm_ymmm256b64_imm8EVEX_Vpternlogq_zmm_k1z_zmm_zmmm512b64_imm8EVEX_Vcmpps_kr_k1_xmm_xmmm128b32_imm8EVEX_Vcmpps_kr_k1_ymm_ymmm256b32_imm8EVEX_Vcmpps_kr_k1_zmm_zmmm512b32_imm8_saeEVEX_Vcmppd_kr_k1_xmm_xmmm128b64_imm8EVEX_Vcmppd_kr_k1_ymm_ymmm256b64_imm8EVEX_Vcmppd_kr_k1_zmm_zmmm512b64_imm8_saeEVEX_Vpcmpd_kr_k1_xmm_xmmm128b32_imm8EVEX_Vpcmpd_kr_k1_ymm_ymmm256b32_imm8EVEX_Vpcmpd_kr_k1_zmm_zmmm512b32_imm8EVEX_Vpcmpud_kr_k1_xmm_xmmm128b32_imm8EVEX_Vpcmpud_kr_k1_ymm_ymmm256b32_imm8EVEX_Vpcmpud_kr_k1_zmm_zmmm512b32_imm8EVEX_Vpcmpq_kr_k1_xmm_xmmm128b64_imm8EVEX_Vpcmpq_kr_k1_ymm_ymmm256b64_imm8EVEX_Vpcmpq_kr_k1_zmm_zmmm512b64_imm8EVEX_Vpcmpuq_kr_k1_xmm_xmmm128b64_imm8EVEX_Vpcmpuq_kr_k1_ymm_ymmm256b64_imm8EVEX_Vpcmpuq_kr_k1_zmm_zmmm512b64_imm8EVEX_Vcmpss_kr_k1_xmm_xmmm32_imm8_saeEVEX_Vcmpsd_kr_k1_xmm_xmmm64_imm8_saeEVEX_Vpbroadcastd_xmm_k1z_xmmm32EVEX_Vpbroadcastd_xmm_k1z_r32EVEX_Vbroadcastss_xmm_k1z_xmmm32EVEX_Vpbroadcastd_ymm_k1z_xmmm32EVEX_Vpbroadcastd_ymm_k1z_r32EVEX_Vbroadcastss_ymm_k1z_xmmm32EVEX_Vpbroadcastd_zmm_k1z_xmmm32EVEX_Vpbroadcastd_zmm_k1z_r32EVEX_Vbroadcastss_zmm_k1z_xmmm32EVEX_Vpgatherdd_xmm_k1_vm32xEVEX_Vgatherdps_xmm_k1_vm32xEVEX_Vpscatterdd_vm32x_k1_xmmEVEX_Vpgatherdd_ymm_k1_vm32yEVEX_Vgatherdps_ymm_k1_vm32yEVEX_Vpscatterdd_vm32y_k1_ymmEVEX_Vpgatherdd_zmm_k1_vm32zEVEX_Vgatherdps_zmm_k1_vm32zEVEX_Vpscatterdd_vm32z_k1_zmmEVEX_Vpminsd_xmm_k1z_xmm_xmmm128b32EVEX_Vpminsd_ymm_k1z_ymm_ymmm256b32EVEX_Vpminsd_zmm_k1z_zmm_zmmm512b32EVEX_Vpminsq_xmm_k1z_xmm_xmmm128b64EVEX_Vpminsq_ymm_k1z_ymm_ymmm256b64EVEX_Vpminsq_zmm_k1z_zmm_zmmm512b64EVEX_Vpmaxsd_xmm_k1z_xmm_xmmm128b32EVEX_Vpmaxsd_ymm_k1z_ymm_ymmm256b32EVEX_Vpmaxsd_zmm_k1z_zmm_zmmm512b32EVEX_Vpmaxsq_xmm_k1z_xmm_xmmm128b64EVEX_Vpmaxsq_ymm_k1z_ymm_ymmm256b64EVEX_Vpmaxsq_zmm_k1z_zmm_zmmm512b64EVEX_Vpminud_xmm_k1z_xmm_xmmm128b32EVEX_Vpminud_ymm_k1z_ymm_ymmm256b32EVEX_Vpminud_zmm_k1z_zmm_zmmm512b32EVEX_Vpminuq_xmm_k1z_xmm_xmmm128b64EVEX_Vpminuq_ymm_k1z_ymm_ymmm256b64EVEX_Vpminuq_zmm_k1z_zmm_zmmm512b64EVEX_Vpmaxud_xmm_k1z_xmm_xmmm128b32EVEX_Vpmaxud_ymm_k1z_ymm_ymmm256b32EVEX_Vpmaxud_zmm_k1z_zmm_zmmm512b32EVEX_Vpmaxuq_xmm_k1z_xmm_xmmm128b64EVEX_Vpmaxuq_ymm_k1z_ymm_ymmm256b64EVEX_Vpmaxuq_zmm_k1z_zmm_zmmm512b64EVEX_Vpandnd_xmm_k1z_xmm_xmmm128b32EVEX_Vpandnd_ymm_k1z_ymm_ymmm256b32EVEX_Vpandnd_zmm_k1z_zmm_zmmm512b32EVEX_Vpandnq_xmm_k1z_xmm_xmmm128b64EVEX_Vpandnq_ymm_k1z_ymm_ymmm256b64EVEX_Vpandnq_zmm_k1z_zmm_zmmm512b64EVEX_Vpsubq_xmm_k1z_xmm_xmmm128b64EVEX_Vpsubq_ymm_k1z_ymm_ymmm256b64EVEX_Vpsubq_zmm_k1z_zmm_zmmm512b64EVEX_Vpmullq_xmm_k1z_xmm_xmmm128b64EVEX_Vpmullq_ymm_k1z_ymm_ymmm256b64EVEX_Vpmullq_zmm_k1z_zmm_zmmm512b64EVEX_Vpmuldq_xmm_k1z_xmm_xmmm128b64EVEX_Vpmuldq_ymm_k1z_ymm_ymmm256b64EVEX_Vpmuldq_zmm_k1z_zmm_zmmm512b64EVEX_Vpackusdw_xmm_k1z_xmm_xmmm128b32EVEX_Vpackusdw_ymm_k1z_ymm_ymmm256b32EVEX_Vpackusdw_zmm_k1z_zmm_zmmm512b32EVEX_Vpminsb_xmm_k1z_xmm_xmmm128EVEX_Vpminsb_ymm_k1z_ymm_ymmm256EVEX_Vpminsb_zmm_k1z_zmm_zmmm512EVEX_Vpmaxsb_xmm_k1z_xmm_xmmm128EVEX_Vpmaxsb_ymm_k1z_ymm_ymmm256EVEX_Vpmaxsb_zmm_k1z_zmm_zmmm512EVEX_Vpminuw_xmm_k1z_xmm_xmmm128EVEX_Vpminuw_ymm_k1z_ymm_ymmm256EVEX_Vpminuw_zmm_k1z_zmm_zmmm512EVEX_Vpmaxuw_xmm_k1z_xmm_xmmm128EVEX_Vpmaxuw_ymm_k1z_ymm_ymmm256EVEX_Vpmaxuw_zmm_k1z_zmm_zmmm512EVEX_Vpmulhrsw_xmm_k1z_xmm_xmmm128EVEX_Vpmulhrsw_ymm_k1z_ymm_ymmm256EVEX_Vpmulhrsw_zmm_k1z_zmm_zmmm512EVEX_Vpshufb_xmm_k1z_xmm_xmmm128EVEX_Vpshufb_ymm_k1z_ymm_ymmm256EVEX_Vpshufb_zmm_k1z_zmm_zmmm512EVEX_Vpaddw_xmm_k1z_xmm_xmmm128EVEX_Vpaddw_ymm_k1z_ymm_ymmm256EVEX_Vpaddw_zmm_k1z_zmm_zmmm512EVEX_Vpsubb_xmm_k1z_xmm_xmmm128EVEX_Vpsubb_ymm_k1z_ymm_ymmm256EVEX_Vpsubb_zmm_k1z_zmm_zmmm512EVEX_Vpsubw_xmm_k1z_xmm_xmmm128EVEX_Vpsubw_ymm_k1z_ymm_ymmm256EVEX_Vpsubw_zmm_k1z_zmm_zmmm512EVEX_Vpermd_ymm_k1z_ymm_ymmm256b32EVEX_Vpermd_zmm_k1z_zmm_zmmm512b32EVEX_Vpermq_ymm_k1z_ymm_ymmm256b64EVEX_Vpermq_zmm_k1z_zmm_zmmm512b64EVEX_Vaesenc_xmm_xmm_xmmm128EVEX_Vaesenc_ymm_ymm_ymmm256EVEX_Vaesenc_zmm_zmm_zmmm512EVEX_Vaesenclast_xmm_xmm_xmmm128EVEX_Vaesenclast_ymm_ymm_ymmm256EVEX_Vaesenclast_zmm_zmm_zmmm512EVEX_Vaesdec_xmm_xmm_xmmm128EVEX_Vaesdec_ymm_ymm_ymmm256EVEX_Vaesdec_zmm_zmm_zmmm512EVEX_Vaesdeclast_xmm_xmm_xmmm128EVEX_Vaesdeclast_ymm_ymm_ymmm256EVEX_Vaesdeclast_zmm_zmm_zmmm512EVEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8EVEX_Vpclmulqdq_ymm_ymm_ymmm256_imm8EVEX_Vpclmulqdq_zmm_zmm_zmmm512_imm8EVEX_Vpcmpeqq_kr_k1_xmm_xmmm128b64EVEX_Vpcmpeqq_kr_k1_ymm_ymmm256b64EVEX_Vpcmpeqq_kr_k1_zmm_zmmm512b64EVEX_Vpcmpgtq_kr_k1_xmm_xmmm128b64EVEX_Vpcmpgtq_kr_k1_ymm_ymmm256b64EVEX_Vpcmpgtq_kr_k1_zmm_zmmm512b64EVEX_Vpmovsxbw_xmm_k1z_xmmm64EVEX_Vpmovsxbw_ymm_k1z_xmmm128EVEX_Vpmovsxbw_zmm_k1z_ymmm256EVEX_Vpmovzxbw_xmm_k1z_xmmm64EVEX_Vpmovzxbw_ymm_k1z_xmmm128EVEX_Vpmovzxbw_zmm_k1z_ymmm256EVEX_Vpmovsxdq_xmm_k1z_xmmm64EVEX_Vpmovsxdq_ymm_k1z_xmmm128EVEX_Vpmovsxdq_zmm_k1z_ymmm256EVEX_Vpmovzxdq_xmm_k1z_xmmm64EVEX_Vpmovzxdq_ymm_k1z_xmmm128EVEX_Vpmovzxdq_zmm_k1z_ymmm256EVEX_Vmovdqa32_xmmm128_k1_xmmEVEX_Vmovdqa32_ymmm256_k1_ymmEVEX_Vmovdqa64_xmmm128_k1_xmmEVEX_Vmovdqa64_ymmm256_k1_ymmEVEX_Vmovdqu32_xmmm128_k1_xmmEVEX_Vmovdqu32_ymmm256_k1_ymmEVEX_Vmovdqu64_xmmm128_k1_xmmEVEX_Vmovdqu64_ymmm256_k1_ymmEVEX_Vmovdqu8_xmm_k1z_xmmm128EVEX_Vmovdqu8_ymm_k1z_ymmm256EVEX_Vmovdqu8_xmmm128_k1_xmmEVEX_Vmovdqu8_ymmm256_k1_ymmEVEX_Vmovdqu8_zmmm512_k1_zmmEVEX_Vmovdqu16_xmm_k1z_xmmm128EVEX_Vmovdqu16_ymm_k1z_ymmm256EVEX_Vmovdqu16_xmmm128_k1_xmmEVEX_Vmovdqu16_ymmm256_k1_ymmEVEX_Vmovdqu16_zmmm512_k1_zmmEVEX_Vpbroadcastq_xmm_k1z_xmmm64EVEX_Vpbroadcastq_ymm_k1z_xmmm64EVEX_Vpbroadcastq_zmm_k1z_xmmm64EVEX_Vbroadcastsd_ymm_k1z_xmmm64EVEX_Vbroadcastsd_zmm_k1z_xmmm64EVEX_Vcvtdq2ps_xmm_k1z_xmmm128b32EVEX_Vcvtdq2ps_ymm_k1z_ymmm256b32EVEX_Vcvtdq2ps_zmm_k1z_zmmm512b32_erEVEX_Vcvtps2dq_xmm_k1z_xmmm128b32EVEX_Vcvtps2dq_ymm_k1z_ymmm256b32EVEX_Vcvtps2dq_zmm_k1z_zmmm512b32_erEVEX_Vcvttps2dq_xmm_k1z_xmmm128b32EVEX_Vcvttps2dq_ymm_k1z_ymmm256b32EVEX_Vcvttps2dq_zmm_k1z_zmmm512b32_saeEVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8XOP_Vpcmov_xmm_xmm_xmmm128_xmmXOP_Vpcmov_xmm_xmm_xmm_xmmm128XOP_Vpcmov_ymm_ymm_ymmm256_ymmXOP_Vpcmov_ymm_ymm_ymm_ymmm256XOP_Vprotb_xmm_xmmm128_xmmXOP_Vprotb_xmm_xmm_xmmm128XOP_Vprotb_xmm_xmmm128_imm8XOP_Vprotw_xmm_xmmm128_xmmXOP_Vprotw_xmm_xmm_xmmm128XOP_Vprotw_xmm_xmmm128_imm8XOP_Vprotd_xmm_xmmm128_xmmXOP_Vprotd_xmm_xmm_xmmm128XOP_Vprotd_xmm_xmmm128_imm8XOP_Vprotq_xmm_xmmm128_xmmXOP_Vprotq_xmm_xmm_xmmm128XOP_Vprotq_xmm_xmmm128_imm8XOP_Vpcomb_xmm_xmm_xmmm128_imm8XOP_Vpcomw_xmm_xmm_xmmm128_imm8XOP_Vpcomd_xmm_xmm_xmmm128_imm8XOP_Vpcomq_xmm_xmm_xmmm128_imm8XOP_Vpcomub_xmm_xmm_xmmm128_imm8XOP_Vpcomuw_xmm_xmm_xmmm128_imm8XOP_Vpcomud_xmm_xmm_xmmm128_imm8XOP_Vpcomuq_xmm_xmm_xmmm128_imm8XOP_Vfrczps_xmm_xmmm128XOP_Vfrczps_ymm_ymmm256XOP_Vfrczpd_xmm_xmmm128XOP_Vfrczpd_ymm_ymmm256XOP_Vfrczss_xmm_xmmm32XOP_Vfrczsd_xmm_xmmm64XOP_Vpmacssww_xmm_xmm_xmmm128_xmmXOP_Vpmacsswd_xmm_xmm_xmmm128_xmmXOP_Vpmacssdd_xmm_xmm_xmmm128_xmmXOP_Vphaddbw_xmm_xmmm128XOP_Blcfill_r32_rm32XOP_Blcfill_r64_rm64XOP_Blsfill_r32_rm32XOP_Blsfill_r64_rm64XOP_Blcs_r32_rm32XOP_Blcs_r64_rm64XOP_Tzmsk_r32_rm32XOP_Tzmsk_r64_rm64XOP_Blcic_r32_rm32XOP_Blcic_r64_rm64XOP_Blsic_r32_rm32XOP_Blsic_r64_rm64XOP_T1mskc_r32_rm32XOP_T1mskc_r64_rm64XOP_Blcmsk_r32_rm32XOP_Blcmsk_r64_rm64XOP_Blci_r32_rm32XOP_Blci_r64_rm64XOP_Bextr_r32_rm32_imm32XOP_Bextr_r64_rm64_imm32MVEX_Vaddps_zmm_k1_zmm_zmmmtMVEX_Vmulps_zmm_k1_zmm_zmmmtMVEX_Vsubps_zmm_k1_zmm_zmmmtMVEX_Vpaddd_zmm_k1_zmm_zmmmtMVEX_Vfmadd231ps_zmm_k1_zmm_zmmmtMVEX_Vmovaps_zmm_k1_zmmmtMVEX_Vmovaps_mt_k1_zmmMVEX_Vmovdqa32_zmm_k1_zmmmtMVEX_Vmovdqa32_mt_k1_zmmMVEX_Vpgatherdd_zmm_k1_mvtMVEX_Vpscatterdd_mvt_k1_zmm"

var codeNameIndex = [...]uint16{
	0, 7, 18, 29, 41, 53, 63, 75, 87, 99, 109, 121, 133, 145, 156, 168,
	181, 194, 203, 214, 225, 236, 245, 256, 267, 278, 288, 299, 311, 323, 333, 345,
	357, 369, 379, 391, 403, 415, 426, 438, 451, 464, 474, 486, 498, 510, 520, 532,
	544, 556, 567, 579, 592, 605, 615, 627, 639, 651, 661, 673, 685, 697, 708, 720,
	733, 746, 756, 768, 780, 792, 802, 814, 826, 838, 849, 861, 874, 887, 897, 909,
	921, 933, 943, 955, 967, 979, 990, 1002, 1015, 1028, 1038, 1050, 1062, 1074, 1084, 1096,
	1108, 1120, 1131, 1143, 1156, 1169, 1181, 1195, 1209, 1223, 1238, 1251, 1264, 1277, 1288, 1301,
	1314, 1327, 1341, 1353, 1365, 1377, 1389, 1403, 1417, 1431, 1446, 1459, 1472, 1485, 1497, 1511,
	1525, 1539, 1554, 1567, 1580, 1593, 1605, 1619, 1633, 1647, 1662, 1675, 1688, 1701, 1713, 1727,
	1741, 1755, 1770, 1783, 1796, 1809, 1821, 1835, 1849, 1863, 1878, 1891, 1904, 1917, 1929, 1943,
	1957, 1971, 1986, 1999, 2012, 2025, 2033, 2041, 2048, 2055, 2063, 2071, 2079, 2087, 2094, 2101,
	2109, 2117, 2124, 2131, 2134, 2137, 2140, 2143, 2150, 2157, 2164, 2171, 2179, 2187, 2195, 2202,
	2209, 2216, 2222, 2228, 2233, 2238, 2253, 2268, 2281, 2296, 2311, 2326, 2336, 2347, 2358, 2377,
	2396, 2415, 2425, 2435, 2445, 2463, 2481, 2499, 2509, 2520, 2531, 2542, 2554, 2566, 2576, 2586,
	2596, 2607, 2618, 2629, 2639, 2649, 2659, 2670, 2681, 2692, 2702, 2712, 2722, 2733, 2744, 2755,
	2766, 2777, 2788, 2798, 2808, 2818, 2828, 2838, 2848, 2859, 2870, 2881, 2891, 2901, 2911, 2922,
	2933, 2944, 2954, 2964, 2974, 2985, 2996, 3007, 3018, 3029, 3040, 3050, 3060, 3070, 3081, 3094,
	3107, 3120, 3131, 3144, 3157, 3170, 3180, 3192, 3204, 3216, 3226, 3238, 3250, 3262, 3275, 3290,
	3305, 3314, 3323, 3332, 3345, 3360, 3375, 3383, 3391, 3399, 3403, 3407, 3411, 3416, 3427, 3439,
	3451, 3454, 3458, 3462, 3465, 3468, 3471, 3483, 3495, 3499, 3505, 3511, 3517, 3522, 3527, 3532,
	3536, 3540, 3553, 3567, 3582, 3597, 3610, 3624, 3639, 3654, 3665, 3678, 3691, 3704, 3715, 3728,
	3741, 3754, 3766, 3779, 3793, 3807, 3818, 3830, 3843, 3856, 3867, 3879, 3892, 3905, 3916, 3928,
	3941, 3954, 3965, 3978, 3991, 4004, 4016, 4029, 4042, 4055, 4064, 4074, 4084, 4094, 4104, 4115,
	4126, 4137, 4149, 4162, 4175, 4188, 4197, 4207, 4217, 4227, 4237, 4248, 4259, 4270, 4282, 4295,
	4308, 4321, 4330, 4340, 4350, 4360, 4370, 4381, 4392, 4403, 4415, 4428, 4441, 4454, 4463, 4473,
	4483, 4493, 4503, 4514, 4525, 4536, 4548, 4561, 4574, 4587, 4596, 4606, 4616, 4626, 4636, 4647,
	4658, 4669, 4681, 4694, 4707, 4720, 4729, 4739, 4749, 4759, 4769, 4780, 4791, 4802, 4814, 4827,
	4840, 4853, 4862, 4872, 4882, 4892, 4902, 4913, 4924, 4935, 4947, 4960, 4973, 4986, 4995, 5005,
	5015, 5025, 5035, 5046, 5057, 5068, 5079, 5090, 5101, 5106, 5111, 5116, 5129, 5142, 5155, 5168,
	5180, 5191, 5205, 5219, 5233, 5245, 5257, 5274, 5291, 5308, 5314, 5320, 5326, 5337, 5348, 5359,
	5364, 5369, 5374, 5378, 5386, 5390, 5395, 5400, 5405, 5413, 5421, 5425, 5432, 5449, 5466, 5484,
	5502, 5520, 5538, 5556, 5572, 5588, 5605, 5622, 5639, 5656, 5673, 5688, 5703, 5719, 5735, 5751,
	5767, 5783, 5795, 5807, 5820, 5833, 5846, 5859, 5872, 5882, 5892, 5903, 5914, 5925, 5937, 5947,
	5960, 5973, 5982, 5994, 6006, 6017, 6028, 6039, 6050, 6061, 6069, 6077, 6086, 6095, 6104, 6114,
	6118, 6121, 6124, 6137, 6152, 6167, 6182, 6189, 6197, 6205, 6213, 6220, 6228, 6236, 6244, 6251,
	6259, 6267, 6275, 6283, 6292, 6301, 6310, 6317, 6325, 6333, 6341, 6349, 6358, 6367, 6376, 6379,
	6382, 6385, 6388, 6391, 6394, 6401, 6409, 6417, 6425, 6432, 6440, 6448, 6456, 6465, 6474, 6483,
	6493, 6503, 6513, 6521, 6529, 6537, 6546, 6555, 6564, 6573, 6582, 6591, 6600, 6611, 6622, 6630,
	6640, 6650, 6659, 6667, 6676, 6685, 6695, 6705, 6715, 6725, 6735, 6745, 6755, 6765, 6774, 6785,
	6796, 6805, 6813, 6819, 6827, 6835, 6841, 6848, 6853, 6857, 6861, 6866, 6872, 6878, 6884, 6888,
	6893, 6898, 6907, 6913, 6919, 6925, 6933, 6939, 6945, 6951, 6963, 6975, 6987, 6999, 7011, 7023,
	7033, 7040, 7044, 7054, 7061, 7068, 7072, 7078, 7086, 7094, 7097, 7108, 7120, 7134, 7139, 7153,
	7166, 7179, 7192, 7206, 7223, 7241, 7255, 7269, 7283, 7297, 7311, 7328, 7346, 7359, 7372, 7386,
	7400, 7410, 7420, 7427, 7434, 7442, 7450, 7458, 7483, 7508, 7533, 7558, 7583, 7608, 7633, 7658,
	7683, 7708, 7733, 7758, 7783, 7808, 7833, 7858, 7883, 7908, 7933, 7958, 7983, 8008, 8033, 8058,
	8083, 8108, 8133, 8143, 8153, 8163, 8173, 8183, 8193, 8203, 8213, 8223, 8233, 8244, 8257, 8270,
	8281, 8294, 8307, 8312, 8317, 8322, 8327, 8335, 8341, 8349, 8357, 8371, 8385, 8399, 8414, 8429,
	8444, 8458, 8472, 8486, 8501, 8516, 8531, 8545, 8559, 8573, 8588, 8603, 8618, 8633, 8648, 8663,
	8677, 8691, 8705, 8719, 8733, 8747, 8762, 8777, 8792, 8806, 8820, 8834, 8849, 8864, 8879, 8893,
	8907, 8921, 8936, 8951, 8966, 8981, 8996, 9011, 9025, 9039, 9053, 9061, 9072, 9083, 9092, 9104,
	9116, 9124, 9135, 9146, 9155, 9167, 9179, 9187, 9198, 9209, 9218, 9230, 9242, 9251, 9263, 9275,
	9283, 9294, 9305, 9313, 9324, 9335, 9344, 9356, 9368, 9376, 9387, 9398, 9407, 9419, 9431, 9439,
	9450, 9461, 9470, 9482, 9494, 9503, 9515, 9527, 9535, 9546, 9557, 9565, 9574, 9582, 9591, 9599,
	9608, 9617, 9625, 9633, 9642, 9650, 9659, 9667, 9676, 9685, 9693, 9701, 9709, 9717, 9724, 9731,
	9738, 9746, 9754, 9762, 9769, 9776, 9783, 9788, 9791, 9802, 9813, 9824, 9836, 9848, 9860, 9872,
	9884, 9896, 9908, 9920, 9932, 9950, 9968, 9986, 10002, 10018, 10034, 10052, 10070, 10088, 10104, 10120,
	10136, 10149, 10162, 10175, 10188, 10205, 10224, 10243, 10256, 10269, 10282, 10296, 10312, 10328, 10344, 10357,
	10370, 10383, 10396, 10409, 10422, 10435, 10448, 10461, 10474, 10487, 10500, 10514, 10528, 10542, 10555, 10568,
	10581, 10595, 10609, 10623, 10638, 10653, 10668, 10679, 10690, 10702, 10714, 10726, 10738, 10750, 10762, 10775,
	10788, 10801, 10814, 10827, 10840, 10853, 10866, 10879, 10891, 10903, 10915, 10929, 10943, 10957, 10969, 10981,
	10993, 11007, 11021, 11035, 11046, 11059, 11072, 11085, 11099, 11113, 11126, 11141, 11152, 11163, 11172, 11183,
	11193, 11203, 11213, 11223, 11233, 11243, 11252, 11261, 11270, 11279, 11288, 11300, 11312, 11324, 11339, 11356,
	11372, 11390, 11401, 11412, 11421, 11432, 11442, 11454, 11466, 11476, 11483, 11496, 11502, 11508, 11514, 11521,
	11533, 11545, 11557, 11569, 11581, 11593, 11605, 11617, 11628, 11639, 11657, 11675, 11691, 11707, 11725, 11743,
	11759, 11775, 11789, 11804, 11818, 11838, 11856, 11870, 11884, 11904, 11924, 11944, 11964, 11978, 11993, 12007,
	12027, 12041, 12055, 12073, 12091, 12109, 12127, 12145, 12163, 12180, 12197, 12214, 12231, 12247, 12263, 12282,
	12302, 12322, 12342, 12362, 12382, 12400, 12419, 12438, 12457, 12476, 12495, 12513, 12531, 12548, 12565, 12581,
	12597, 12613, 12629, 12647, 12665, 12682, 12699, 12718, 12736, 12753, 12769, 12786, 12803, 12821, 12839, 12855,
	12871, 12888, 12905, 12922, 12939, 12955, 12971, 12988, 13005, 13021, 13037, 13056, 13076, 13095, 13114, 13134,
	13154, 13175, 13192, 13209, 13225, 13241, 13258, 13275, 13291, 13307, 13324, 13341, 13357, 13373, 13390, 13407,
	13423, 13439, 13461, 13483, 13504, 13525, 13548, 13571, 13589, 13607, 13625, 13643, 13663, 13683, 13704, 13723,
	13743, 13757, 13775, 13796, 13814, 13835, 13853, 13874, 13891, 13911, 13927, 13946, 13962, 13981, 13997, 14016,
	14033, 14053, 14071, 14092, 14110, 14131, 14149, 14170, 14187, 14207, 14223, 14242, 14258, 14277, 14293, 14312,
	14326, 14343, 14357, 14374, 14388, 14405, 14419, 14436, 14451, 14469, 14485, 14504, 14520, 14539, 14554, 14572,
	14585, 14601, 14617, 14636, 14652, 14671, 14686, 14704, 14718, 14735, 14749, 14766, 14780, 14797, 14811, 14828,
	14842, 14859, 14875, 14894, 14909, 14927, 14942, 14960, 14975, 14993, 15008, 15026, 15038, 15053, 15068, 15086,
	15101, 15119, 15134, 15152, 15165, 15181, 15195, 15212, 15226, 15243, 15257, 15274, 15290, 15309, 15325, 15344,
	15359, 15377, 15391, 15408, 15422, 15439, 15453, 15470, 15484, 15501, 15515, 15532, 15546, 15563, 15577, 15594,
	15616, 15638, 15650, 15662, 15675, 15688, 15701, 15719, 15737, 15757, 15780, 15804, 15828, 15841, 15855, 15868,
	15882, 15895, 15909, 15922, 15936, 15949, 15963, 15976, 15990, 16003, 16017, 16032, 16045, 16059, 16074, 16078,
	16093, 16108, 16127, 16152, 16168, 16184, 16197, 16212, 16224, 16236, 16249, 16262, 16277, 16290, 16308, 16326,
	16347, 16369, 16387, 16406, 16421, 16435, 16449, 16464, 16480, 16493, 16509, 16527, 16549, 16564, 16582, 16597,
	16615, 16630, 16648, 16666, 16687, 16701, 16718, 16732, 16749, 16763, 16780, 16800, 16817, 16836, 16854, 16867,
	16880, 16893, 16906, 16919, 16932, 16945, 16958, 16972, 16986, 17000, 17013, 17026, 17039, 17052, 17073, 17097,
	17121, 17144, 17168, 17188, 17208, 17229, 17249, 17269, 17295, 17321, 17337, 17356, 17371, 17389, 17404, 17422,
	17438, 17457, 17472, 17490, 17505, 17523, 17538, 17556, 17573, 17593, 17613, 17633, 17652, 17671, 17690, 17709,
	17728, 17747, 17766, 17785, 17804, 17823, 17842, 17860, 17879, 17899, 17918, 17936, 17954, 17972, 17990, 18008,
	18026, 18044, 18062, 18084, 18102, 18120, 18142, 18160, 18182, 18199, 18214, 18229, 18245, 18261, 18277, 18293,
	18317, 18340, 18364, 18388, 18409, 18430, 18452, 18474, 18497, 18522, 18546, 18567, 18588, 18612, 18638, 18664,
	18690, 18722, 18732, 18744, 18754, 18766, 18776, 18788, 18799, 18812, 18822, 18834, 18845, 18858, 18868, 18880,
	18891, 18904, 18913, 18922, 18932, 18946, 18960, 18972, 18987, 19002, 19015, 19022, 19034, 19038, 19042, 19046,
	19050, 19054, 19058, 19064, 19070, 19075, 19081, 19087, 19091, 19096, 19101, 19106, 19112, 19119, 19125, 19132,
	19139, 19144, 19151, 19156, 19163, 19170, 19176, 19180, 19184, 19196, 19208, 19220, 19233, 19245, 19258, 19270,
	19283, 19297, 19311, 19326, 19340, 19347, 19358, 19371, 19382, 19394, 19403, 19413, 19428, 19443, 19459, 19474,
	19479, 19485, 19491, 19497, 19504, 19510, 19524, 19537, 19547, 19557, 19567, 19578, 19588, 19599, 19609, 19620,
	19632, 19644, 19657, 19669, 19682, 19694, 19703, 19716, 19725, 19735, 19749, 19764, 19778, 19793, 19806, 19815,
	19822, 19830, 19843, 19857, 19869, 19881, 19893, 19906, 19918, 19931, 19943, 19956, 19969, 19982, 19996, 20009,
	20023, 20036, 20042, 20053, 20066, 20077, 20089, 20100, 20111, 20123, 20135, 20145, 20154, 20169, 20183, 20209,
	20235, 20261, 20287, 20312, 20337, 20363, 20389, 20415, 20441, 20466, 20491, 20517, 20543, 20569, 20595, 20620,
	20645, 20671, 20697, 20723, 20749, 20774, 20799, 20825, 20851, 20877, 20903, 20928, 20953, 20979, 21005, 21031,
	21057, 21082, 21107, 21133, 21159, 21185, 21211, 21238, 21265, 21292, 21319, 21344, 21369, 21394, 21419, 21445,
	21471, 21497, 21523, 21546, 21569, 21592, 21615, 21638, 21661, 21684, 21707, 21730, 21753, 21776, 21799, 21822,
	21845, 21868, 21891, 21914, 21937, 21960, 21983, 22006, 22029, 22052, 22075, 22098, 22121, 22144, 22167, 22189,
	22207, 22234, 22252, 22274, 22292, 22319, 22337, 22368, 22399, 22430, 22461, 22491, 22521, 22535, 22547, 22563,
	22579, 22604, 22629, 22654, 22679, 22703, 22727, 22753, 22779, 22805, 22831, 22857, 22883, 22909, 22935, 22961,
	22987, 23015, 23043, 23071, 23099, 23126, 23153, 23180, 23207, 23229, 23251, 23284, 23317, 23350, 23383, 23416,
	23449, 23473, 23497, 23521, 23545, 23569, 23593, 23620, 23647, 23683, 23716, 23751, 23778, 23804, 23832, 23860,
	23888, 23916, 23944, 23972, 24000, 24028, 24059, 24090, 24121, 24152, 24183, 24214, 24245, 24276, 24306, 24336,
	24354, 24372, 24390, 24408, 24428, 24454, 24480, 24497, 24513, 24529, 24544, 24561, 24577, 24594, 24610, 24626,
	24642, 24658, 24674, 24690, 24706, 24722, 24738, 24756, 24775, 24792, 24811, 24829, 24844, 24862, 24883, 24904,
	24926, 24948, 24969, 24990, 25011, 25032, 25053, 25074, 25091, 25108, 25127, 25146, 25163, 25180, 25201, 25222,
	25243, 25264, 25285, 25306, 25327, 25348, 25370, 25392, 25431, 25470, 25509, 25548, 25576, 25604, 25631, 25658,
	25685, 25712, 25740, 25768, 25795, 25822, 25849, 25876, 25903, 25930, 25959, 25988, 26015, 26042, 26070, 26098,
	26127, 26156, 26184, 26212, 26239, 26266, 26293, 26320, 26347, 26374, 26401, 26428, 26455, 26482, 26509, 26536,
	26563, 26590, 26617, 26644, 26671, 26698, 26729, 26760, 26787, 26814, 26845, 26876, 26909, 26942, 26972, 27002,
	27037, 27072, 27096, 27121, 27145, 27169, 27193, 27217, 27241, 27266, 27290, 27314, 27338, 27363, 27387, 27412,
	27436, 27460, 27484, 27508, 27532, 27557, 27581, 27605, 27629, 27654, 27677, 27714, 27747, 27775, 27809, 27843,
	27880, 27914, 27948, 27985, 28018, 28051, 28085, 28119, 28156, 28190, 28224, 28261, 28294, 28327, 28361, 28395,
	28432, 28466, 28500, 28537, 28570, 28603, 28637, 28671, 28708, 28742, 28776, 28813, 28846, 28879, 28913, 28947,
	28985, 29019, 29053, 29091, 29125, 29159, 29193, 29227, 29265, 29299, 29333, 29371, 29405, 29439, 29470, 29501,
	29535, 29566, 29597, 29631, 29659, 29687, 29715, 29742, 29769, 29796, 29824, 29852, 29880, 29907, 29934, 29961,
	29989, 30017, 30045, 30072, 30099, 30126, 30154, 30182, 30210, 30237, 30264, 30291, 30321, 30351, 30381, 30410,
	30440, 30470, 30500, 30529, 30559, 30589, 30619, 30648, 30678, 30708, 30738, 30767, 30796, 30826, 30860, 30894,
	30928, 30962, 30996, 31030, 31064, 31098, 31132, 31166, 31200, 31234, 31267, 31300, 31333, 31366, 31399, 31432,
	31466, 31500, 31534, 31568, 31602, 31636, 31670, 31704, 31738, 31773, 31808, 31843, 31874, 31905, 31936, 31978,
	32020, 32062, 32099, 32136, 32173, 32210, 32247, 32284, 32323, 32362, 32404, 32443, 32482, 32524, 32558, 32592,
	32629, 32672, 32715, 32758, 32801, 32844, 32887, 32924, 32961, 33002, 33039, 33076, 33117, 33154, 33191, 33228,
	33266, 33304, 33342, 33379, 33416, 33453, 33491, 33529, 33567, 33604, 33641, 33673, 33702, 33734, 33766, 33795,
	33827, 33859, 33888, 33920, 33948, 33976, 34005, 34033, 34061, 34090, 34118, 34146, 34175, 34210, 34245, 34280,
	34315, 34350, 34385, 34420, 34455, 34490, 34525, 34560, 34595, 34630, 34665, 34700, 34735, 34770, 34805, 34840,
	34875, 34910, 34945, 34980, 35015, 35050, 35085, 35120, 35155, 35190, 35225, 35259, 35293, 35327, 35362, 35397,
	35432, 35467, 35502, 35537, 35574, 35611, 35648, 35680, 35712, 35744, 35776, 35808, 35840, 35872, 35904, 35936,
	35968, 36000, 36032, 36066, 36100, 36134, 36166, 36198, 36230, 36261, 36292, 36323, 36354, 36385, 36416, 36447,
	36478, 36509, 36543, 36577, 36611, 36645, 36673, 36701, 36729, 36761, 36793, 36825, 36853, 36881, 36909, 36941,
	36973, 37005, 37041, 37077, 37113, 37147, 37181, 37215, 37249, 37283, 37317, 37346, 37376, 37406, 37435, 37465,
	37495, 37524, 37554, 37584, 37613, 37643, 37673, 37702, 37731, 37760, 37789, 37818, 37847, 37876, 37905, 37934,
	37963, 37991, 38019, 38047, 38077, 38107, 38136, 38165, 38194, 38226, 38258, 38290, 38322, 38354, 38387, 38420,
	38456, 38489, 38522, 38558, 38592, 38626, 38664, 38700, 38736, 38772, 38802, 38832, 38862, 38892, 38918, 38944,
	38971, 38997, 39023, 39050, 39076, 39102, 39129, 39155, 39181, 39208, 39239, 39270, 39301, 39332, 39364, 39396,
	39428, 39460, 39483, 39506, 39529, 39552, 39574, 39596, 39629, 39662, 39695, 39719, 39739, 39759, 39779, 39799,
	39816, 39833, 39851, 39869, 39887, 39905, 39923, 39941, 39960, 39979, 39998, 40017, 40034, 40051, 40075, 40099,
	40127, 40155, 40183, 40211, 40244, 40269, 40291, 40318, 40342, 40368, 40395,
}
