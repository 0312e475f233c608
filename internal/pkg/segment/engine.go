package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
)

// Rule 自定义分群的单条规则，多条规则之间为 AND 关系
type Rule struct {
	Field    string `json:"field" validate:"required"`
	Operator string `json:"operator" validate:"required"`
	Value    int64  `json:"value"`
}

// 规则可引用的用户行为统计字段
var allowedFields = map[string]struct{}{
	"total_events":           {},
	"events_last_7_days":     {},
	"preference_count":       {},
	"share_count":            {},
	"days_since_first_event": {},
	"days_since_last_event":  {},
}

var allowedOperators = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
	"eq":  "==",
	"neq": "!=",
}

var (
	ErrEmptyRules      = errors.New("规则列表不能为空")
	ErrUnknownField    = errors.New("规则字段不合法")
	ErrUnknownOperator = errors.New("规则操作符不合法")
)

// Program 编译后的分群判定程序，可对任意用户的统计快照求值
type Program struct {
	program cel.Program
}

// Compile 将 {field, operator, value} 规则集编译为 CEL 程序
func Compile(rules []Rule) (*Program, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRules
	}

	exprs := make([]string, 0, len(rules))
	for _, rule := range rules {
		if _, ok := allowedFields[rule.Field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, rule.Field)
		}
		op, ok := allowedOperators[rule.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, rule.Operator)
		}
		exprs = append(exprs, fmt.Sprintf("%s %s %d", rule.Field, op, rule.Value))
	}
	expression := strings.Join(exprs, " && ")

	opts := make([]cel.EnvOption, 0, len(allowedFields))
	for field := range allowedFields {
		opts = append(opts, cel.Variable(field, cel.IntType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("创建 CEL 环境失败: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("编译规则表达式失败: %w", issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("构建 CEL 程序失败: %w", err)
	}

	return &Program{program: program}, nil
}

// Match 对单个用户的统计快照求值
func (p *Program) Match(stats map[string]interface{}) (bool, error) {
	input := make(map[string]interface{}, len(allowedFields))
	for field := range allowedFields {
		input[field] = int64(0)
	}
	for k, v := range stats {
		input[k] = v
	}

	result, _, err := p.program.Eval(input)
	if err != nil {
		return false, fmt.Errorf("规则求值失败: %w", err)
	}

	matched, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("规则表达式必须返回布尔值，实际为 %T", result.Value())
	}
	return matched, nil
}
