package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid formatted CPF", input: "529.982.247-25", want: "52998224725"},
		{name: "valid bare CPF", input: "16899535009", want: "16899535009"},
		{name: "valid formatted CNPJ", input: "11.222.333/0001-81", want: "11222333000181"},
		{name: "CPF with bad check digit", input: "529.982.247-26", wantErr: true},
		{name: "CNPJ with bad check digit", input: "11.222.333/0001-82", wantErr: true},
		{name: "repeated digits CPF", input: "111.111.111-11", wantErr: true},
		{name: "too short", input: "12345", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong length between cpf and cnpj", input: "123456789012", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDocument(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
