// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// MemorySize identifies the size and element
// type of the data read or written by a
// memory operand.
//
// Packed sizes are named PackedV_E, where V
// is the vector size in bits and E is the
// element type. Broadcast sizes are named
// BroadcastV_E, where V is the size of the
// vector the single element is broadcast
// into.
type MemorySize uint8

const (
	MemorySizeUnknown MemorySize = iota
	MemorySizeUInt8
	MemorySizeUInt16
	MemorySizeUInt32
	MemorySizeUInt64
	MemorySizeUInt128
	MemorySizeUInt256
	MemorySizeUInt512
	MemorySizeInt8
	MemorySizeInt16
	MemorySizeInt32
	MemorySizeInt64
	MemorySizeWordOffset
	MemorySizeDwordOffset
	MemorySizeQwordOffset
	MemorySizeSegPtr16
	MemorySizeSegPtr32
	MemorySizeSegPtr64
	MemorySizeFword6
	MemorySizeFword10
	MemorySizeBound16_WordWord
	MemorySizeBound32_DwordDword
	MemorySizeBnd32
	MemorySizeBnd64
	MemorySizeFloat16
	MemorySizeFloat32
	MemorySizeFloat64
	MemorySizeFloat80
	MemorySizeBcd
	MemorySizeFpuEnv14
	MemorySizeFpuEnv28
	MemorySizeFpuState94
	MemorySizeFpuState108
	MemorySizeFxsave_512Byte
	MemorySizeXsave
	MemorySizeTile
	MemorySizePacked32_Int8
	MemorySizePacked32_UInt8
	MemorySizePacked32_Int16
	MemorySizePacked32_UInt16
	MemorySizePacked32_BFloat16
	MemorySizePacked32_Float16
	MemorySizePacked64_Int8
	MemorySizePacked64_UInt8
	MemorySizePacked64_Int16
	MemorySizePacked64_UInt16
	MemorySizePacked64_Int32
	MemorySizePacked64_UInt32
	MemorySizePacked64_Float32
	MemorySizePacked128_Int8
	MemorySizePacked128_UInt8
	MemorySizePacked128_Int16
	MemorySizePacked128_UInt16
	MemorySizePacked128_Int32
	MemorySizePacked128_UInt32
	MemorySizePacked128_Int64
	MemorySizePacked128_UInt64
	MemorySizePacked128_Float16
	MemorySizePacked128_Float32
	MemorySizePacked128_Float64
	MemorySizePacked128_BFloat16
	MemorySizePacked128_2xBFloat16
	MemorySizePacked256_Int8
	MemorySizePacked256_UInt8
	MemorySizePacked256_Int16
	MemorySizePacked256_UInt16
	MemorySizePacked256_Int32
	MemorySizePacked256_UInt32
	MemorySizePacked256_Int64
	MemorySizePacked256_UInt64
	MemorySizePacked256_Float16
	MemorySizePacked256_Float32
	MemorySizePacked256_Float64
	MemorySizePacked256_BFloat16
	MemorySizePacked256_2xBFloat16
	MemorySizePacked512_Int8
	MemorySizePacked512_UInt8
	MemorySizePacked512_Int16
	MemorySizePacked512_UInt16
	MemorySizePacked512_Int32
	MemorySizePacked512_UInt32
	MemorySizePacked512_Int64
	MemorySizePacked512_UInt64
	MemorySizePacked512_Float16
	MemorySizePacked512_Float32
	MemorySizePacked512_Float64
	MemorySizePacked512_BFloat16
	MemorySizePacked512_2xBFloat16
	MemorySizeBroadcast64_Int32
	MemorySizeBroadcast64_UInt32
	MemorySizeBroadcast64_Float32
	MemorySizeBroadcast128_Int32
	MemorySizeBroadcast128_UInt32
	MemorySizeBroadcast128_Float32
	MemorySizeBroadcast128_2xBFloat16
	MemorySizeBroadcast128_Int64
	MemorySizeBroadcast128_UInt64
	MemorySizeBroadcast128_Float64
	MemorySizeBroadcast128_Float16
	MemorySizeBroadcast256_Int32
	MemorySizeBroadcast256_UInt32
	MemorySizeBroadcast256_Float32
	MemorySizeBroadcast256_2xBFloat16
	MemorySizeBroadcast256_Int64
	MemorySizeBroadcast256_UInt64
	MemorySizeBroadcast256_Float64
	MemorySizeBroadcast256_Float16
	MemorySizeBroadcast512_Int32
	MemorySizeBroadcast512_UInt32
	MemorySizeBroadcast512_Float32
	MemorySizeBroadcast512_2xBFloat16
	MemorySizeBroadcast512_Int64
	MemorySizeBroadcast512_UInt64
	MemorySizeBroadcast512_Float64
	MemorySizeBroadcast512_Float16

	NumMemorySizes int = iota
)

type memorySizeInfo struct {
	name   string
	size   uint16 // Bytes accessed.
	elem   uint16 // Element size in bytes.
	vector uint8  // Broadcast destination size in bytes.
	kind   memoryElementKind
}

type memoryElementKind uint8

const (
	elementOther memoryElementKind = iota
	elementInteger
	elementFloat
)

var memorySizes = [NumMemorySizes]memorySizeInfo{
	MemorySizeUnknown:                 {name: "Unknown"},
	MemorySizeUInt8:                   {name: "UInt8", size: 1, elem: 1, kind: elementInteger},
	MemorySizeUInt16:                  {name: "UInt16", size: 2, elem: 2, kind: elementInteger},
	MemorySizeUInt32:                  {name: "UInt32", size: 4, elem: 4, kind: elementInteger},
	MemorySizeUInt64:                  {name: "UInt64", size: 8, elem: 8, kind: elementInteger},
	MemorySizeUInt128:                 {name: "UInt128", size: 16, elem: 16, kind: elementInteger},
	MemorySizeUInt256:                 {name: "UInt256", size: 32, elem: 32, kind: elementInteger},
	MemorySizeUInt512:                 {name: "UInt512", size: 64, elem: 64, kind: elementInteger},
	MemorySizeInt8:                    {name: "Int8", size: 1, elem: 1, kind: elementInteger},
	MemorySizeInt16:                   {name: "Int16", size: 2, elem: 2, kind: elementInteger},
	MemorySizeInt32:                   {name: "Int32", size: 4, elem: 4, kind: elementInteger},
	MemorySizeInt64:                   {name: "Int64", size: 8, elem: 8, kind: elementInteger},
	MemorySizeWordOffset:              {name: "WordOffset", size: 2, elem: 2},
	MemorySizeDwordOffset:             {name: "DwordOffset", size: 4, elem: 4},
	MemorySizeQwordOffset:             {name: "QwordOffset", size: 8, elem: 8},
	MemorySizeSegPtr16:                {name: "SegPtr16", size: 4, elem: 4},
	MemorySizeSegPtr32:                {name: "SegPtr32", size: 6, elem: 6},
	MemorySizeSegPtr64:                {name: "SegPtr64", size: 10, elem: 10},
	MemorySizeFword6:                  {name: "Fword6", size: 6, elem: 6},
	MemorySizeFword10:                 {name: "Fword10", size: 10, elem: 10},
	MemorySizeBound16_WordWord:        {name: "Bound16_WordWord", size: 4, elem: 2},
	MemorySizeBound32_DwordDword:      {name: "Bound32_DwordDword", size: 8, elem: 4},
	MemorySizeBnd32:                   {name: "Bnd32", size: 8, elem: 4},
	MemorySizeBnd64:                   {name: "Bnd64", size: 16, elem: 8},
	MemorySizeFloat16:                 {name: "Float16", size: 2, elem: 2, kind: elementFloat},
	MemorySizeFloat32:                 {name: "Float32", size: 4, elem: 4, kind: elementFloat},
	MemorySizeFloat64:                 {name: "Float64", size: 8, elem: 8, kind: elementFloat},
	MemorySizeFloat80:                 {name: "Float80", size: 10, elem: 10, kind: elementFloat},
	MemorySizeBcd:                     {name: "Bcd", size: 10, elem: 10},
	MemorySizeFpuEnv14:                {name: "FpuEnv14", size: 14},
	MemorySizeFpuEnv28:                {name: "FpuEnv28", size: 28},
	MemorySizeFpuState94:              {name: "FpuState94", size: 94},
	MemorySizeFpuState108:             {name: "FpuState108", size: 108},
	MemorySizeFxsave_512Byte:          {name: "Fxsave_512Byte", size: 512},
	MemorySizeXsave:                   {name: "Xsave"},
	MemorySizeTile:                    {name: "Tile"},
	MemorySizePacked32_Int8:           {name: "Packed32_Int8", size: 4, elem: 1, kind: elementInteger},
	MemorySizePacked32_UInt8:          {name: "Packed32_UInt8", size: 4, elem: 1, kind: elementInteger},
	MemorySizePacked32_Int16:          {name: "Packed32_Int16", size: 4, elem: 2, kind: elementInteger},
	MemorySizePacked32_UInt16:         {name: "Packed32_UInt16", size: 4, elem: 2, kind: elementInteger},
	MemorySizePacked32_BFloat16:       {name: "Packed32_BFloat16", size: 4, elem: 2, kind: elementFloat},
	MemorySizePacked32_Float16:        {name: "Packed32_Float16", size: 4, elem: 2, kind: elementFloat},
	MemorySizePacked64_Int8:           {name: "Packed64_Int8", size: 8, elem: 1, kind: elementInteger},
	MemorySizePacked64_UInt8:          {name: "Packed64_UInt8", size: 8, elem: 1, kind: elementInteger},
	MemorySizePacked64_Int16:          {name: "Packed64_Int16", size: 8, elem: 2, kind: elementInteger},
	MemorySizePacked64_UInt16:         {name: "Packed64_UInt16", size: 8, elem: 2, kind: elementInteger},
	MemorySizePacked64_Int32:          {name: "Packed64_Int32", size: 8, elem: 4, kind: elementInteger},
	MemorySizePacked64_UInt32:         {name: "Packed64_UInt32", size: 8, elem: 4, kind: elementInteger},
	MemorySizePacked64_Float32:        {name: "Packed64_Float32", size: 8, elem: 4, kind: elementFloat},
	MemorySizePacked128_Int8:          {name: "Packed128_Int8", size: 16, elem: 1, kind: elementInteger},
	MemorySizePacked128_UInt8:         {name: "Packed128_UInt8", size: 16, elem: 1, kind: elementInteger},
	MemorySizePacked128_Int16:         {name: "Packed128_Int16", size: 16, elem: 2, kind: elementInteger},
	MemorySizePacked128_UInt16:        {name: "Packed128_UInt16", size: 16, elem: 2, kind: elementInteger},
	MemorySizePacked128_Int32:         {name: "Packed128_Int32", size: 16, elem: 4, kind: elementInteger},
	MemorySizePacked128_UInt32:        {name: "Packed128_UInt32", size: 16, elem: 4, kind: elementInteger},
	MemorySizePacked128_Int64:         {name: "Packed128_Int64", size: 16, elem: 8, kind: elementInteger},
	MemorySizePacked128_UInt64:        {name: "Packed128_UInt64", size: 16, elem: 8, kind: elementInteger},
	MemorySizePacked128_Float16:       {name: "Packed128_Float16", size: 16, elem: 2, kind: elementFloat},
	MemorySizePacked128_Float32:       {name: "Packed128_Float32", size: 16, elem: 4, kind: elementFloat},
	MemorySizePacked128_Float64:       {name: "Packed128_Float64", size: 16, elem: 8, kind: elementFloat},
	MemorySizePacked128_BFloat16:      {name: "Packed128_BFloat16", size: 16, elem: 2, kind: elementFloat},
	MemorySizePacked128_2xBFloat16:    {name: "Packed128_2xBFloat16", size: 16, elem: 4, kind: elementFloat},
	MemorySizePacked256_Int8:          {name: "Packed256_Int8", size: 32, elem: 1, kind: elementInteger},
	MemorySizePacked256_UInt8:         {name: "Packed256_UInt8", size: 32, elem: 1, kind: elementInteger},
	MemorySizePacked256_Int16:         {name: "Packed256_Int16", size: 32, elem: 2, kind: elementInteger},
	MemorySizePacked256_UInt16:        {name: "Packed256_UInt16", size: 32, elem: 2, kind: elementInteger},
	MemorySizePacked256_Int32:         {name: "Packed256_Int32", size: 32, elem: 4, kind: elementInteger},
	MemorySizePacked256_UInt32:        {name: "Packed256_UInt32", size: 32, elem: 4, kind: elementInteger},
	MemorySizePacked256_Int64:         {name: "Packed256_Int64", size: 32, elem: 8, kind: elementInteger},
	MemorySizePacked256_UInt64:        {name: "Packed256_UInt64", size: 32, elem: 8, kind: elementInteger},
	MemorySizePacked256_Float16:       {name: "Packed256_Float16", size: 32, elem: 2, kind: elementFloat},
	MemorySizePacked256_Float32:       {name: "Packed256_Float32", size: 32, elem: 4, kind: elementFloat},
	MemorySizePacked256_Float64:       {name: "Packed256_Float64", size: 32, elem: 8, kind: elementFloat},
	MemorySizePacked256_BFloat16:      {name: "Packed256_BFloat16", size: 32, elem: 2, kind: elementFloat},
	MemorySizePacked256_2xBFloat16:    {name: "Packed256_2xBFloat16", size: 32, elem: 4, kind: elementFloat},
	MemorySizePacked512_Int8:          {name: "Packed512_Int8", size: 64, elem: 1, kind: elementInteger},
	MemorySizePacked512_UInt8:         {name: "Packed512_UInt8", size: 64, elem: 1, kind: elementInteger},
	MemorySizePacked512_Int16:         {name: "Packed512_Int16", size: 64, elem: 2, kind: elementInteger},
	MemorySizePacked512_UInt16:        {name: "Packed512_UInt16", size: 64, elem: 2, kind: elementInteger},
	MemorySizePacked512_Int32:         {name: "Packed512_Int32", size: 64, elem: 4, kind: elementInteger},
	MemorySizePacked512_UInt32:        {name: "Packed512_UInt32", size: 64, elem: 4, kind: elementInteger},
	MemorySizePacked512_Int64:         {name: "Packed512_Int64", size: 64, elem: 8, kind: elementInteger},
	MemorySizePacked512_UInt64:        {name: "Packed512_UInt64", size: 64, elem: 8, kind: elementInteger},
	MemorySizePacked512_Float16:       {name: "Packed512_Float16", size: 64, elem: 2, kind: elementFloat},
	MemorySizePacked512_Float32:       {name: "Packed512_Float32", size: 64, elem: 4, kind: elementFloat},
	MemorySizePacked512_Float64:       {name: "Packed512_Float64", size: 64, elem: 8, kind: elementFloat},
	MemorySizePacked512_BFloat16:      {name: "Packed512_BFloat16", size: 64, elem: 2, kind: elementFloat},
	MemorySizePacked512_2xBFloat16:    {name: "Packed512_2xBFloat16", size: 64, elem: 4, kind: elementFloat},
	MemorySizeBroadcast64_Int32:       {name: "Broadcast64_Int32", size: 4, elem: 4, vector: 8, kind: elementInteger},
	MemorySizeBroadcast64_UInt32:      {name: "Broadcast64_UInt32", size: 4, elem: 4, vector: 8, kind: elementInteger},
	MemorySizeBroadcast64_Float32:     {name: "Broadcast64_Float32", size: 4, elem: 4, vector: 8, kind: elementFloat},
	MemorySizeBroadcast128_Int32:      {name: "Broadcast128_Int32", size: 4, elem: 4, vector: 16, kind: elementInteger},
	MemorySizeBroadcast128_UInt32:     {name: "Broadcast128_UInt32", size: 4, elem: 4, vector: 16, kind: elementInteger},
	MemorySizeBroadcast128_Float32:    {name: "Broadcast128_Float32", size: 4, elem: 4, vector: 16, kind: elementFloat},
	MemorySizeBroadcast128_2xBFloat16: {name: "Broadcast128_2xBFloat16", size: 4, elem: 4, vector: 16, kind: elementFloat},
	MemorySizeBroadcast128_Int64:      {name: "Broadcast128_Int64", size: 8, elem: 8, vector: 16, kind: elementInteger},
	MemorySizeBroadcast128_UInt64:     {name: "Broadcast128_UInt64", size: 8, elem: 8, vector: 16, kind: elementInteger},
	MemorySizeBroadcast128_Float64:    {name: "Broadcast128_Float64", size: 8, elem: 8, vector: 16, kind: elementFloat},
	MemorySizeBroadcast128_Float16:    {name: "Broadcast128_Float16", size: 2, elem: 2, vector: 16, kind: elementFloat},
	MemorySizeBroadcast256_Int32:      {name: "Broadcast256_Int32", size: 4, elem: 4, vector: 32, kind: elementInteger},
	MemorySizeBroadcast256_UInt32:     {name: "Broadcast256_UInt32", size: 4, elem: 4, vector: 32, kind: elementInteger},
	MemorySizeBroadcast256_Float32:    {name: "Broadcast256_Float32", size: 4, elem: 4, vector: 32, kind: elementFloat},
	MemorySizeBroadcast256_2xBFloat16: {name: "Broadcast256_2xBFloat16", size: 4, elem: 4, vector: 32, kind: elementFloat},
	MemorySizeBroadcast256_Int64:      {name: "Broadcast256_Int64", size: 8, elem: 8, vector: 32, kind: elementInteger},
	MemorySizeBroadcast256_UInt64:     {name: "Broadcast256_UInt64", size: 8, elem: 8, vector: 32, kind: elementInteger},
	MemorySizeBroadcast256_Float64:    {name: "Broadcast256_Float64", size: 8, elem: 8, vector: 32, kind: elementFloat},
	MemorySizeBroadcast256_Float16:    {name: "Broadcast256_Float16", size: 2, elem: 2, vector: 32, kind: elementFloat},
	MemorySizeBroadcast512_Int32:      {name: "Broadcast512_Int32", size: 4, elem: 4, vector: 64, kind: elementInteger},
	MemorySizeBroadcast512_UInt32:     {name: "Broadcast512_UInt32", size: 4, elem: 4, vector: 64, kind: elementInteger},
	MemorySizeBroadcast512_Float32:    {name: "Broadcast512_Float32", size: 4, elem: 4, vector: 64, kind: elementFloat},
	MemorySizeBroadcast512_2xBFloat16: {name: "Broadcast512_2xBFloat16", size: 4, elem: 4, vector: 64, kind: elementFloat},
	MemorySizeBroadcast512_Int64:      {name: "Broadcast512_Int64", size: 8, elem: 8, vector: 64, kind: elementInteger},
	MemorySizeBroadcast512_UInt64:     {name: "Broadcast512_UInt64", size: 8, elem: 8, vector: 64, kind: elementInteger},
	MemorySizeBroadcast512_Float64:    {name: "Broadcast512_Float64", size: 8, elem: 8, vector: 64, kind: elementFloat},
	MemorySizeBroadcast512_Float16:    {name: "Broadcast512_Float16", size: 2, elem: 2, vector: 64, kind: elementFloat},
}

func (m MemorySize) String() string {
	if int(m) < NumMemorySizes {
		return memorySizes[m].name
	}

	return fmt.Sprintf("MemorySize(%d)", m)
}

// Size returns the number of bytes read
// or written, or zero if the size is not
// fixed.
func (m MemorySize) Size() int {
	if int(m) < NumMemorySizes {
		return int(memorySizes[m].size)
	}

	return 0
}

// ElementSize returns the size in bytes
// of each element. Scalar sizes have a
// single element, the size of the whole.
func (m MemorySize) ElementSize() int {
	if int(m) < NumMemorySizes {
		return int(memorySizes[m].elem)
	}

	return 0
}

// ElementCount returns the number of
// elements. For a broadcast, this is the
// number of copies made of the single
// element read from memory.
func (m MemorySize) ElementCount() int {
	if int(m) >= NumMemorySizes {
		return 0
	}

	info := &memorySizes[m]
	switch {
	case info.elem == 0:
		return 0
	case info.vector != 0:
		return int(info.vector) / int(info.elem)
	default:
		return int(info.size) / int(info.elem)
	}
}

// IsBroadcast returns whether the memory
// size is a single element broadcast to
// every element of a vector.
func (m MemorySize) IsBroadcast() bool {
	return int(m) < NumMemorySizes && memorySizes[m].vector != 0
}

// IsPacked returns whether the memory size
// contains more than one element.
func (m MemorySize) IsPacked() bool {
	return !m.IsBroadcast() && m.ElementCount() > 1
}

// IsFloat returns whether the elements are
// floating point values.
func (m MemorySize) IsFloat() bool {
	return int(m) < NumMemorySizes && memorySizes[m].kind == elementFloat
}

// IsInteger returns whether the elements
// are integers.
func (m MemorySize) IsInteger() bool {
	return int(m) < NumMemorySizes && memorySizes[m].kind == elementInteger
}
