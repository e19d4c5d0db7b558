package core

import (
	"errors"
	"math"
	"testing"
)

func TestTransform_UnitZ(t *testing.T) {
	p := NewVector3(3, 4, 5)
	if got := Transform(p, Vector3UnitZ, World, Object); got != p {
		t.Errorf("法向量为 +Z 时应原样返回: 得到 %+v", got)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	normals := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, -1),
		NewVector3(1, 1, 1),
		NewVector3(0.001, 0.002, 1),
	}
	p := NewVector3(10, -3, 7)

	for i, n := range normals {
		ocs := Transform(p, n, World, Object)
		back := Transform(ocs, n, Object, World)
		if !back.Equal(p, 1e-9) {
			t.Errorf("第 %d 个法向量往返变换不符: 期望 %+v, 得到 %+v", i, p, back)
		}
	}
}

func TestTransform_NormalX(t *testing.T) {
	// 法向量 +X: OCS X 轴为 WCS +Y，Y 轴为 WCS +Z
	ocs := Transform(NewVector3(2, 3, 4), Vector3UnitX, World, Object)
	if !ocs.Equal(NewVector3(3, 4, 2), 1e-12) {
		t.Errorf("变换不符: 得到 %+v", ocs)
	}
}

func TestArbitraryAxis_Orthonormal(t *testing.T) {
	ax, ay, az := ArbitraryAxis(NewVector3(1, 2, 3))
	for i, d := range []float64{ax.Dot(ay), ay.Dot(az), az.Dot(ax)} {
		if math.Abs(d) > 1e-12 {
			t.Errorf("第 %d 对轴不正交: %v", i, d)
		}
	}
	if math.Abs(ax.Cross(ay).Sub(az).Length()) > 1e-12 {
		t.Errorf("坐标轴不是右手系")
	}
}

func TestNormalizeAngle(t *testing.T) {
	for in, expected := range map[float64]float64{-90: 270, 360: 0, 725: 5, 45: 45} {
		if got := NormalizeAngle(in); math.Abs(got-expected) > 1e-12 {
			t.Errorf("角度 %v 规范化不符: 期望 %v, 得到 %v", in, expected, got)
		}
	}
}

func TestArgumentError(t *testing.T) {
	err := OutOfRange("offset", -1.0, "cannot be negative")
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("应为越界错误: %v", err)
	}
	var ae *ArgumentError
	if !errors.As(err, &ae) || ae.Name != "offset" {
		t.Errorf("参数名不符: %v", err)
	}
	if !errors.Is(NilArgument("style"), ErrNilArgument) {
		t.Errorf("应为空参数错误")
	}
}
