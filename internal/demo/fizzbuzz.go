package demo

import "github.com/rtoal/carlos/internal/ast"

func divisibleBy(n int64) *ast.BinaryExpression {
	return &ast.BinaryExpression{
		Op:    "==",
		Left:  &ast.BinaryExpression{Op: "%", Left: ident("i"), Right: intLit(n)},
		Right: intLit(0),
	}
}

// fizzbuzz builds:
//
//	for i in 1...20 {
//	  if i % 15 == 0 {
//	    print("FizzBuzz")
//	  } else if i % 3 == 0 {
//	    print("Fizz")
//	  } else if i % 5 == 0 {
//	    print("Buzz")
//	  } else {
//	    print(i)
//	  }
//	}
func fizzbuzz() *ast.Program {
	chain := &ast.IfStatement{
		Test:       divisibleBy(15),
		Consequent: []ast.Statement{exprStmt(call(ident("print"), stringLit("FizzBuzz")))},
		Alternate: &ast.IfStatement{
			Test:       divisibleBy(3),
			Consequent: []ast.Statement{exprStmt(call(ident("print"), stringLit("Fizz")))},
			Alternate: &ast.IfStatement{
				Test:       divisibleBy(5),
				Consequent: []ast.Statement{exprStmt(call(ident("print"), stringLit("Buzz")))},
				Alternate: &ast.Block{
					Statements: []ast.Statement{exprStmt(call(ident("print"), ident("i")))},
				},
			},
		},
	}

	return program(
		&ast.ForRangeStatement{
			Iterator: "i",
			Low:      intLit(1),
			Op:       ast.RangeInclusive,
			High:     intLit(20),
			Body:     []ast.Statement{chain},
		},
	)
}
